// File: edges.go
// Role: the edge-list external interface (spec §6): ingest a flat
// sequence of 6-tuples into a *mgraph.Graph. This is intentionally thin —
// parsing an edge list is named explicitly as a collaborator, not core
// engineering (spec §1).

package mdbackbone

import (
	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// EdgeTuple is one input record: (source, target, layer_start, layer_end,
// layer_weight_index, weight). A weight of 0 contributes an empty
// multi-distance mapping, not a stored zero entry (spec §6).
type EdgeTuple struct {
	Source           uint64
	Target           uint64
	LayerStart       uint64
	LayerEnd         uint64
	LayerWeightIndex uint64
	Weight           float32
}

// BuildGraph ingests edges into a fresh *mgraph.Graph. Later tuples for
// the same (Source, Target) pair overwrite earlier ones (spec §3, §8
// scenario S4): there is no multi-edge support.
func BuildGraph(edges []EdgeTuple) *mgraph.Graph {
	g := mgraph.New()

	for _, e := range edges {
		layer := multidist.LayerID{
			LayerStart:       e.LayerStart,
			LayerEnd:         e.LayerEnd,
			LayerWeightIndex: e.LayerWeightIndex,
		}
		g.AddEdge(mgraph.NodeID(e.Source), mgraph.NodeID(e.Target), multidist.Single(layer, e.Weight))
	}

	return g
}

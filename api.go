// File: api.go
// Role: the five external entry points (spec §6): DistanceClosure,
// MultilayerBackbone, and the three StructuralBackbone* variants. Each
// ingests a flat edge list and builds its own *mgraph.Graph, so callers
// never touch the mgraph/sssp/oracle/backbone packages directly for the
// common case.

package mdbackbone

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mdbackbone/backbone"
	"github.com/katalvlaran/mdbackbone/closure"
	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// DistanceClosure computes the full all-pairs Pareto closure of edges
// (spec §4.D).
func DistanceClosure(ctx context.Context, edges []EdgeTuple) (closure.Closure, error) {
	g := BuildGraph(edges)

	return closure.Build(ctx, g)
}

// BackboneEdge is one retained edge of a multilayer backbone: the direct
// (u,v) pair together with the Pareto front of u->v path distances that
// justified keeping it.
type BackboneEdge struct {
	From  mgraph.NodeID
	To    mgraph.NodeID
	Front []multidist.MultiDistance
}

// MultilayerBackbone computes the closure of edges and keeps an edge
// (u,v) iff its direct weight is a member of closure[u][v] (spec §6).
// The output weight for a retained edge is that Pareto front.
func MultilayerBackbone(ctx context.Context, edges []EdgeTuple) ([]BackboneEdge, error) {
	g := BuildGraph(edges)

	c, err := closure.Build(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("mdbackbone: %w", err)
	}

	var out []BackboneEdge
	for _, u := range g.Nodes() {
		for _, e := range g.NeighborEdges(u) {
			front, ok := c[u][e.To]
			if !ok || !multidist.Contains(front, e.Weight) {
				continue
			}
			out = append(out, BackboneEdge{From: u, To: e.To, Front: front})
		}
	}

	return out, nil
}

// StructuralBackboneNaive ingests edges, removes every edge found
// semi-metric by the n-step oracle filter (spec §4.F), and returns the
// resulting graph. n == nil computes the full (unbounded) structural
// backbone.
func StructuralBackboneNaive(ctx context.Context, edges []EdgeTuple, n *int) (*mgraph.Graph, error) {
	if n != nil && *n < 0 {
		return nil, ErrInvalidDepth
	}

	g := BuildGraph(edges)
	if _, err := backbone.Naive(ctx, g, n); err != nil {
		return nil, fmt.Errorf("mdbackbone: %w", err)
	}

	return g, nil
}

// StructuralBackboneCosta ingests edges and removes every edge strictly
// dominated by an alternative path in its source's closure (spec §4.G).
func StructuralBackboneCosta(ctx context.Context, edges []EdgeTuple) (*mgraph.Graph, error) {
	g := BuildGraph(edges)
	if _, err := backbone.Costa(ctx, g); err != nil {
		return nil, fmt.Errorf("mdbackbone: %w", err)
	}

	return g, nil
}

// StructuralBackboneSimas ingests edges and removes every edge found
// semi-metric by the Simas one-/two-step seeding procedure (spec §4.H).
func StructuralBackboneSimas(ctx context.Context, edges []EdgeTuple) (*mgraph.Graph, error) {
	g := BuildGraph(edges)
	if _, err := backbone.Simas(ctx, g); err != nil {
		return nil, fmt.Errorf("mdbackbone: %w", err)
	}

	return g, nil
}

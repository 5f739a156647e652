// File: impl_diamond.go
// Role: Diamond — the two-layer diamond fixture used throughout this
// repo's own tests, exposed here as a reusable constructor so downstream
// callers (and this module's examples) don't hand-roll it.
//
// Shape: 0->1 (layer A), 0->3 (layer B, weight 2), 1->2 (layer B, weight
// 1), 2->3 (layer C, weight 1). Node 3 is reachable from 0 by two
// mutually incomparable paths.

package mdbuilder

import (
	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// Diamond builds the canonical two-layer diamond fixture and returns it
// as a fresh *mgraph.Graph.
func Diamond() *mgraph.Graph {
	layerA := multidist.LayerID{LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0}
	layerB := multidist.LayerID{LayerStart: 0, LayerEnd: 1, LayerWeightIndex: 0}
	layerC := multidist.LayerID{LayerStart: 1, LayerEnd: 1, LayerWeightIndex: 0}

	g := mgraph.New()
	g.AddEdge(0, 1, multidist.Single(layerA, 1.0))
	g.AddEdge(0, 3, multidist.Single(layerB, 2.0))
	g.AddEdge(1, 2, multidist.Single(layerB, 1.0))
	g.AddEdge(2, 3, multidist.Single(layerC, 1.0))

	return g
}

// File: impl_cycle.go
// Role: Cycle(n) constructor — an n-node single-layer ring, grounded in
// the original builder package's Cycle implementation (same vertex and
// edge emission order, generalized from scalar int64 weights to
// single-layer MultiDistance weights).
//
// Contract:
//   - n >= 3 (else ErrTooFewNodes).
//   - Nodes are 0..n-1; edges are emitted i -> (i+1)%n for i=0..n-1.
//   - All edges share one LayerID; weights are drawn via opts' weightFn.

package mdbuilder

import (
	"fmt"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

const minCycleNodes = 3

// Cycle builds an n-node directed ring C_n on a single layer.
func Cycle(n int, opts ...Option) (*mgraph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ring := multidist.LayerID{LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0}
	g := mgraph.New()

	for i := 0; i < n; i++ {
		from := mgraph.NodeID(i)
		to := mgraph.NodeID((i + 1) % n)
		w := cfg.weightFn(cfg.rng)
		g.AddEdge(from, to, multidist.Single(ring, w))
	}

	return g, nil
}

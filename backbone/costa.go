// File: costa.go
// Role: Costa — the closure-based structural backbone (spec §4.G).
// AI-HINT (file):
//   - Sequential by construction: each node's removals mutate g before the
//     next node's SSSP runs, so later nodes see an already-pruned graph
//     (spec §4.G "because it mutates G"). Do not parallelize this loop.
//   - No hop truncation: dist comes from an unbounded SSSP call.

package backbone

import (
	"context"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
	"github.com/katalvlaran/mdbackbone/sssp"
)

// Costa computes the structural backbone of g by sequential closure-based
// dominance (spec §4.G): for each node u, compute its unbounded Pareto
// closure, then remove any out-edge (u,v) whose direct weight is strictly
// dominated by some element of dist[v]. Returns the number of edges
// removed.
func Costa(ctx context.Context, g *mgraph.Graph) (int, error) {
	removed := 0

	for _, u := range g.Nodes() {
		select {
		case <-ctx.Done():
			return removed, ctx.Err()
		default:
		}

		dist, err := sssp.ShortestDistances(g, u)
		if err != nil {
			return removed, err
		}

		for _, e := range g.NeighborEdges(u) {
			front, ok := dist[e.To]
			if !ok {
				continue
			}
			if anyStrictlyLess(front, e.Weight) {
				g.RemoveEdge(u, e.To)
				removed++
			}
		}
	}

	return removed, nil
}

// anyStrictlyLess reports whether any element of front is strictly less
// than w.
func anyStrictlyLess(front []multidist.MultiDistance, w multidist.MultiDistance) bool {
	for _, d := range front {
		if multidist.StrictlyLess(d, w) {
			return true
		}
	}

	return false
}

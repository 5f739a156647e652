// File: naive.go
// Role: Naive — the n-step structural backbone (spec §4.F).
// AI-HINT (file):
//   - Detection is read-only and runs one goroutine per node via errgroup;
//     a MissingEdge failure from the oracle is treated as not-metric (spec
//     §4.F: "unreachable in this procedure"), never as a hard error.
//   - Removal is applied sequentially after every goroutine has reported,
//     matching spec §5's "workers write into disjoint slots, then a
//     sequential reduce" discipline — no edge is removed while another
//     goroutine might still read the graph.

package backbone

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/oracle"
)

// pair is a candidate edge marked for removal.
type pair struct {
	from, to mgraph.NodeID
}

// Naive computes the structural backbone of g by the n-step oracle filter
// (spec §4.F): every edge (u,v) for which oracle.IsMetricInNSteps reports
// false or MissingEdge is removed. n == nil means unbounded (the full
// structural backbone). Returns the number of edges removed.
func Naive(ctx context.Context, g *mgraph.Graph, n *int) (int, error) {
	nodes := g.Nodes()
	removals := make([][]pair, len(nodes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit())

	for i, u := range nodes {
		i, u := i, u
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			var marked []pair
			for _, e := range g.NeighborEdges(u) {
				ok, err := oracle.IsMetricInNSteps(g, u, e.To, n)
				if err != nil && !errors.Is(err, oracle.ErrMissingEdge) {
					return err
				}
				if !ok {
					marked = append(marked, pair{from: u, to: e.To})
				}
			}
			removals[i] = marked

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	removed := 0
	for _, marked := range removals {
		for _, p := range marked {
			g.RemoveEdge(p.from, p.to)
			removed++
		}
	}

	return removed, nil
}

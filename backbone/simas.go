// File: simas.go
// Role: Simas — one-/two-step metric-edge seeding, then a parallel full
// check on the remainder (spec §4.H).
// AI-HINT (file):
//   - Seeding (steps 1-2) is read-only and sequential: cheap, and each
//     promotion in step 2 can unlock further two-hop composites for the
//     same source, so the loop runs to a fixed point before step 3 starts.
//   - Step 3 parallelizes over nodes like Naive, consulting only the
//     oracle for edges seeding left uncertain; step 4 removes sequentially
//     after every goroutine has reported, same discipline as Naive.

package backbone

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
	"github.com/katalvlaran/mdbackbone/oracle"
)

// knownSet tracks known-metric edges as from -> to -> true.
type knownSet map[mgraph.NodeID]map[mgraph.NodeID]bool

func (k knownSet) has(from, to mgraph.NodeID) bool {
	return k[from] != nil && k[from][to]
}

func (k knownSet) mark(from, to mgraph.NodeID) {
	if k[from] == nil {
		k[from] = make(map[mgraph.NodeID]bool)
	}
	k[from][to] = true
}

// Simas computes the structural backbone of g by the Simas seeding
// algorithm (spec §4.H). Returns the number of edges removed.
func Simas(ctx context.Context, g *mgraph.Graph) (int, error) {
	nodes := g.Nodes()
	known := seedOneStep(g, nodes)
	refineTwoStep(g, nodes, known)

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
				if known.has(u, e.To) {
					continue
				}
				ok, err := oracle.IsMetricInNSteps(g, u, e.To, nil)
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

// seedOneStep marks every edge that is a Pareto-minimum among its
// source's outgoing weights as known-metric (spec §4.H step 1): such an
// edge cannot be dominated by any single edge out of the same source.
func seedOneStep(g *mgraph.Graph, nodes []mgraph.NodeID) knownSet {
	known := make(knownSet, len(nodes))

	for _, u := range nodes {
		edges := g.NeighborEdges(u)
		weights := make([]multidist.MultiDistance, len(edges))
		for i, e := range edges {
			weights[i] = e.Weight
		}
		minimal := multidist.Multimin(weights)

		for _, e := range edges {
			if multidist.Contains(minimal, e.Weight) {
				known.mark(u, e.To)
			}
		}
	}

	return known
}

// refineTwoStep repeatedly promotes still-uncertain out-edges of each
// source that are Pareto-minimal among that source's uncertain out-edges
// to known-metric whenever no two-hop composite via an already-known edge
// dominates them (spec §4.H step 2), until a full pass over every source
// makes no new promotion.
func refineTwoStep(g *mgraph.Graph, nodes []mgraph.NodeID, known knownSet) {
	for {
		promoted := false

		for _, u := range nodes {
			composites := twoHopComposites(g, u, known)

			edges := g.NeighborEdges(u)
			var uncertain []mgraph.Edge
			for _, e := range edges {
				if !known.has(u, e.To) {
					uncertain = append(uncertain, e)
				}
			}
			weights := make([]multidist.MultiDistance, len(uncertain))
			for i, e := range uncertain {
				weights[i] = e.Weight
			}
			candidates := multidist.Multimin(weights)

			for _, e := range uncertain {
				if !multidist.Contains(candidates, e.Weight) {
					continue
				}
				if dominatedByAny(composites[e.To], e.Weight) {
					continue
				}
				known.mark(u, e.To)
				promoted = true
			}
		}

		if !promoted {
			return
		}
	}
}

// twoHopComposites collects, per target, the composite weights
// w(u,t)+w(t,x) for every t with (u,t) known-metric.
func twoHopComposites(g *mgraph.Graph, u mgraph.NodeID, known knownSet) map[mgraph.NodeID][]multidist.MultiDistance {
	out := make(map[mgraph.NodeID][]multidist.MultiDistance)

	for t := range known[u] {
		wut, ok := g.EdgeWeight(u, t)
		if !ok {
			continue
		}
		for _, e2 := range g.NeighborEdges(t) {
			out[e2.To] = append(out[e2.To], multidist.Add(wut, e2.Weight))
		}
	}

	return out
}

// dominatedByAny reports whether any composite weakly dominates w
// (composite <= w), which disqualifies w from promotion this round.
func dominatedByAny(composites []multidist.MultiDistance, w multidist.MultiDistance) bool {
	for _, d2 := range composites {
		if multidist.LessOrEqual(d2, w) {
			return true
		}
	}

	return false
}

// File: closure.go
// Role: Build — the parallel all-pairs Pareto closure (spec §4.D).
// AI-HINT (file):
//   - Each source's SSSP runs against the same *mgraph.Graph concurrently;
//     Graph's read path (Nodes/NeighborEdges/EdgeWeight) is RWMutex-guarded
//     and safe for this (spec §5 "read read-only from all workers").
//   - Workers write to disjoint slice slots (one per source), so the combine
//     step after errgroup.Wait is a plain map built from that slice of
//     per-worker results — no locking needed on the result itself.

package closure

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/sssp"
)

// Closure is the all-pairs Pareto distance map: Closure[u][v] is the
// Pareto front of u->v multi-distances (spec §3's MultidistanceClosure).
type Closure map[mgraph.NodeID]sssp.Result

// Build computes the full multidistance closure of g: one
// sssp.ShortestDistances call per node, run across a bounded pool of
// goroutines (spec §4.D, §5).
//
// Complexity: O(V) SSSP invocations, each independently bounded by sssp's
// own complexity; wall-clock time is divided across min(V, runtime.NumCPU())
// workers.
func Build(ctx context.Context, g mgraph.Like) (Closure, error) {
	nodes := g.Nodes()
	results := make([]sssp.Result, len(nodes))

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

			result, err := sssp.ShortestDistances(g, u)
			if err != nil {
				return err
			}
			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make(Closure, len(nodes))
	for i, u := range nodes {
		out[u] = results[i]
	}

	return out, nil
}

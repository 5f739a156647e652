// File: oracle.go
// Role: IsMetricInNSteps — the metric-edge oracle (spec §4.E).
// AI-HINT (file):
//   - If (u,v) is not a direct edge of g, this returns ErrMissingEdge
//     wrapped with the offending pair; backbone algorithms (spec §4.F,
//     §4.H step 3) treat that as "not metric", via errors.Is.
//   - If sssp's early exit fired (some alternative path strictly beats the
//     direct weight), the edge is semi-metric: return false. Otherwise it
//     is metric iff the resulting front at v still contains the direct
//     weight exactly.

package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
	"github.com/katalvlaran/mdbackbone/sssp"
)

// ErrMissingEdge is the sentinel wrapped by IsMetricInNSteps when (u,v) is
// not a direct edge of the graph (spec §7). Use errors.Is(err,
// ErrMissingEdge) to detect it; the wrapped message also names the pair.
var ErrMissingEdge = errors.New("oracle: edge is not present in graph")

// IsMetricInNSteps reports whether (u,v) is a metric edge within n hops
// (spec §4.E). n == nil means unbounded. Returns a wrapped ErrMissingEdge
// if (u,v) is not a direct edge of g.
//
// Complexity: one bounded sssp.ShortestDistances call from u.
func IsMetricInNSteps(g mgraph.Like, u, v mgraph.NodeID, n *int) (bool, error) {
	directWeight, ok := g.EdgeWeight(u, v)
	if !ok {
		return false, fmt.Errorf("%w: (%d,%d)", ErrMissingEdge, u, v)
	}

	opts := []sssp.Option{sssp.WithEdgeCompare(v, directWeight)}
	if n != nil {
		opts = append(opts, sssp.WithMaxDepth(*n))
	}

	result, err := sssp.ShortestDistances(g, u, opts...)
	if err != nil {
		return false, fmt.Errorf("oracle: %w", err)
	}

	front, ok := result[v]
	if !ok {
		// v is absent when the search never reaches it as a non-source
		// node: a hop cap of 0, or a self-loop (v == u, whose zero-distance
		// source entry is dropped). The edge is then reported not metric.
		return false, nil
	}

	return multidist.Contains(front, directWeight), nil
}

// File: types.go
// Role: functional options for ShortestDistances (max depth, edge-compare
// pruning) and sentinel errors.
// AI-HINT (file):
//   - Options are applied left-to-right via DefaultOptions()+WithX(...),
//     matching dijkstra/types.go exactly.
//   - WithMaxDepth validates and panics on structurally meaningless input
//     (negative depth); WithEdgeCompare accepts any target and weight;
//     algorithms themselves never panic.

package sssp

import (
	"errors"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// Sentinel errors of this package.
var (
	// ErrNilGraph is returned by ShortestDistances when a nil mgraph.Like
	// was passed in.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrBadMaxDepth's message is the panic value of WithMaxDepth when it
	// receives a negative value.
	ErrBadMaxDepth = errors.New("sssp: max depth must be non-negative")
)

// EdgeCompare names the target node and reference weight used by the
// early-exit pruning of spec §4.C: the search stops as soon as it proves
// some path to Target beats Weight, and otherwise discards partial
// distances strictly greater than Weight (they can never contribute to a
// front that beats it, since path addition is monotonic).
type EdgeCompare struct {
	Target mgraph.NodeID
	Weight multidist.MultiDistance
}

// Options configures a single ShortestDistances call.
type Options struct {
	// MaxDepth, if non-nil, caps the number of hops explored (spec §4.C
	// step 1). nil means unbounded.
	MaxDepth *int

	// EdgeCompare, if non-nil, enables the early-exit/pruning behavior of
	// spec §4.C step 3. nil means no pruning.
	EdgeCompare *EdgeCompare
}

// Option is a functional option for ShortestDistances.
type Option func(*Options)

// DefaultOptions returns an unbounded, unpruned Options value.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth caps the number of hops explored. Panics if depth is
// negative (a depth cap only makes sense as a non-negative hop count).
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(ErrBadMaxDepth.Error())
	}

	return func(o *Options) {
		d := depth
		o.MaxDepth = &d
	}
}

// WithEdgeCompare enables the early-exit/pruning behavior described in
// spec §4.C's rationale: the oracle (spec §4.E) uses this to ask "is
// there a path from the source that beats this direct edge?" without
// paying for the full closure.
func WithEdgeCompare(target mgraph.NodeID, weight multidist.MultiDistance) Option {
	return func(o *Options) {
		o.EdgeCompare = &EdgeCompare{Target: target, Weight: weight}
	}
}

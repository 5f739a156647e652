// File: sssp.go
// Role: ShortestDistances — the fringe-relaxation Pareto SSSP procedure
// (spec §4.C).
//
// Complexity:
//   - Time: no polynomial bound in general (Pareto fronts can grow with the
//     number of layers), but each push strictly refines seen[v] under the
//     partial order, so the procedure terminates in finitely many pushes on
//     any finite graph with non-negative weights (spec §4.C "Termination").
//   - Space: O(sum of front sizes across all reachable nodes).
package sssp

import (
	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// Result maps every node reachable from the source (other than the source
// itself, unless a non-zero cycle runs through it) to its Pareto front of
// multi-distances from the source.
type Result map[mgraph.NodeID][]multidist.MultiDistance

// fringeEntry is one pending unit of work: a node, the candidate front
// that triggered its (re-)enqueue, and the hop depth at which it was
// pushed.
type fringeEntry struct {
	node       mgraph.NodeID
	candidates []multidist.MultiDistance
	depth      int
}

// ShortestDistances computes the Pareto front of multi-distances from
// source to every node reachable in g, per spec §4.C. opts may supply a
// hop cap (WithMaxDepth) and/or early-exit pruning against a reference
// edge (WithEdgeCompare).
func ShortestDistances(g mgraph.Like, source mgraph.NodeID, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:    g,
		cfg:  cfg,
		dist: make(Result),
		seen: make(Result),
	}
	r.run(source)

	return r.finish(source), nil
}

// runner holds the mutable state for a single ShortestDistances call.
type runner struct {
	g      mgraph.Like
	cfg    Options
	dist   Result // committed Pareto front per node
	seen   Result // best-ever-observed candidate front per node (for no-progress detection)
	fringe []fringeEntry
}

func (r *runner) run(source mgraph.NodeID) {
	initial := []multidist.MultiDistance{multidist.Zero()}
	r.seen[source] = initial
	r.fringe = append(r.fringe, fringeEntry{node: source, candidates: initial, depth: 0})

	for len(r.fringe) > 0 {
		n := r.fringe[0]
		r.fringe = r.fringe[1:]

		if r.cfg.MaxDepth != nil && n.depth > *r.cfg.MaxDepth {
			continue
		}

		merged := multidist.Multimin(append(append([]multidist.MultiDistance{}, r.dist[n.node]...), n.candidates...))

		if r.cfg.EdgeCompare != nil {
			cmp := r.cfg.EdgeCompare
			if n.node == cmp.Target && anyStrictlyLess(merged, cmp.Weight) {
				r.dist[n.node] = merged

				return // early exit: some path already beats the reference weight; finish() still applies the source-removal rule
			}
			merged = dropStrictlyGreater(merged, cmp.Weight)
			if len(merged) == 0 {
				continue
			}
		}

		r.dist[n.node] = merged
		r.relax(n)
	}
}

// relax pushes refined candidate fronts to every neighbor of n.node.
func (r *runner) relax(n fringeEntry) {
	for _, e := range r.g.NeighborEdges(n.node) {
		extended := make([]multidist.MultiDistance, 0, len(r.dist[n.node]))
		for _, d := range r.dist[n.node] {
			extended = append(extended, multidist.Add(d, e.Weight))
		}
		candidate := multidist.Multimin(append(extended, r.seen[e.To]...))

		pushed := !sameFront(candidate, r.seen[e.To])
		if r.cfg.MaxDepth != nil && n.depth >= *r.cfg.MaxDepth {
			pushed = false
		}
		r.seen[e.To] = candidate
		if pushed {
			r.fringe = append(r.fringe, fringeEntry{node: e.To, candidates: candidate, depth: n.depth + 1})
		}
	}
}

// finish applies the final source-removal rule (spec §4.C step 6) and
// returns the committed distances as a copy safe for the caller to retain.
func (r *runner) finish(source mgraph.NodeID) Result {
	out := make(Result, len(r.dist))
	for node, front := range r.dist {
		if node == source && sameFront(front, []multidist.MultiDistance{multidist.Zero()}) {
			continue
		}
		out[node] = front
	}

	return out
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

// dropStrictlyGreater removes every element of front that is strictly
// greater than w: such an element can never contribute to a front beating
// w anywhere downstream, because path addition only grows distances
// (spec §4.C step 3 rationale).
func dropStrictlyGreater(front []multidist.MultiDistance, w multidist.MultiDistance) []multidist.MultiDistance {
	out := make([]multidist.MultiDistance, 0, len(front))
	for _, d := range front {
		if !multidist.StrictlyGreater(d, w) {
			out = append(out, d)
		}
	}

	return out
}

// sameFront reports whether a and b contain the same multiset of
// distances under spec equality, ignoring order (spec §5: "output Pareto
// fronts are sets; order within a front is not observable").
func sameFront(a, b []multidist.MultiDistance) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if multidist.Eq(x, y) {
				used[i] = true
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

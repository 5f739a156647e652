// File: types.go
// Role: NodeID, Edge, the Like interface, and the concrete Graph type.
// AI-HINT (file):
//   - AddEdge MUST insert both endpoints as map keys even if `to` has no
//     outgoing edges of its own — this is what lets sink nodes enumerate via
//     Nodes() (spec §3's sink-node invariant).
//   - AddEdge overwrites any existing weight for the same (from,to) pair;
//     there is no multi-edge support here (spec §3), unlike core.Graph.
package mgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/mdbackbone/multidist"
)

// NodeID is an opaque integer handle for a graph node (spec §3).
type NodeID uint64

// Edge pairs a neighbor NodeID with the MultiDistance weight of the edge
// reaching it, as returned by NeighborEdges.
type Edge struct {
	To     NodeID
	Weight multidist.MultiDistance
}

// Like is the contract that sssp, closure, and oracle are written
// against (spec §4.B): any value that can enumerate node handles,
// list a node's outgoing edges, and mutate edges by (from,to) pair can
// serve as the graph for these algorithms. *Graph implements Like.
type Like interface {
	// Nodes returns every node handle, in ascending order.
	Nodes() []NodeID

	// NeighborEdges returns the (target, weight) pairs for all edges
	// outgoing from from, in ascending order of target.
	NeighborEdges(from NodeID) []Edge

	// EdgeWeight returns the weight of the edge from->to and true, or the
	// zero MultiDistance and false if no such edge exists.
	EdgeWeight(from, to NodeID) (multidist.MultiDistance, bool)

	// AddEdge inserts or overwrites the edge from->to with weight, and
	// ensures both endpoints are enumerable via Nodes() (sink-node
	// invariant, spec §3).
	AddEdge(from, to NodeID, weight multidist.MultiDistance)

	// RemoveEdge deletes the edge from->to. A no-op if the edge is absent.
	RemoveEdge(from, to NodeID)
}

// Graph is the reference Like implementation: a nested map from NodeID to
// a map from neighbor NodeID to MultiDistance (spec §3), guarded by a
// single sync.RWMutex.
//
// Concurrency: reads (Nodes, NeighborEdges, EdgeWeight) take the read lock
// and are safe to call concurrently from many goroutines, which is what
// closure.Build and the read-only detection phases of backbone.Naive and
// backbone.Simas rely on (spec §5). Mutations take the write lock.
type Graph struct {
	mu    sync.RWMutex
	edges map[NodeID]map[NodeID]multidist.MultiDistance
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{edges: make(map[NodeID]map[NodeID]multidist.MultiDistance)}
}

// Nodes returns every node handle in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.edges))
	for n := range g.edges {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NeighborEdges returns the (target, weight) pairs outgoing from from, in
// ascending order of target. Returns an empty slice if from is not a
// known node.
// Complexity: O(deg(from) log deg(from)).
func (g *Graph) NeighborEdges(from NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors := g.edges[from]
	out := make([]Edge, 0, len(neighbors))
	for to, w := range neighbors {
		out = append(out, Edge{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// EdgeWeight returns the weight of from->to and true if it exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to NodeID) (multidist.MultiDistance, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.edges[from][to]

	return w, ok
}

// HasEdge reports whether an edge from->to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// AddNode ensures n is enumerable via Nodes(), even with no edges of its
// own. A no-op if n is already known.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[n]; !ok {
		g.edges[n] = make(map[NodeID]multidist.MultiDistance)
	}
}

// AddEdge inserts or overwrites the edge from->to with weight. Both
// endpoints become enumerable via Nodes(), even if to has no outgoing
// edges of its own (sink-node invariant, spec §3).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight multidist.MultiDistance) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.edges[from] == nil {
		g.edges[from] = make(map[NodeID]multidist.MultiDistance)
	}
	g.edges[from][to] = weight
	if _, ok := g.edges[to]; !ok {
		g.edges[to] = make(map[NodeID]multidist.MultiDistance)
	}
}

// RemoveEdge deletes the edge from->to. A no-op if the edge is absent
// (spec §4.B). Endpoints remain in the node catalog even if this was
// their last edge.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if neighbors, ok := g.edges[from]; ok {
		delete(neighbors, to)
	}
}

// NodeCount returns the number of known nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeCount returns the total number of edges across all nodes.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, neighbors := range g.edges {
		n += len(neighbors)
	}

	return n
}

// Clone returns a deep copy of g: an independent Graph whose edges can be
// mutated without affecting g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := New()
	for from, neighbors := range g.edges {
		dst := make(map[NodeID]multidist.MultiDistance, len(neighbors))
		for to, w := range neighbors {
			dst[to] = w
		}
		cp.edges[from] = dst
	}

	return cp
}

var _ Like = (*Graph)(nil)

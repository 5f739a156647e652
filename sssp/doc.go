// Package sssp implements the Pareto single-source shortest-paths engine
// (spec §4.C): the fringe-relaxation procedure that, given a source node,
// returns the Pareto front of multi-distances from that source to every
// reachable node.
//
// This is the multi-objective analogue of katalvlaran/lvlath/dijkstra:
// where Dijkstra maintains one best scalar distance per vertex and a
// min-heap ordered by that scalar, ShortestDistances maintains one
// Pareto-minimal *set* of distances per node (no heap is possible, because
// the partial order has no single "next smallest" element) and processes a
// plain FIFO fringe instead.
//
// Two optional pruning hooks narrow the search:
//
//   - WithMaxDepth caps the number of hops explored, used by the bounded
//     variant of the metric-edge oracle (spec §4.E).
//   - WithEdgeCompare short-circuits the search as soon as it can prove
//     that some path beats a reference edge weight, and prunes partial
//     distances strictly greater than that weight; used by the oracle's
//     early-exit (spec §4.C rationale, §4.E).
package sssp

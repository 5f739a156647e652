// Package closure builds the full multidistance closure of a graph: the
// all-pairs Pareto-front map (spec §4.D). Each source node's fronts are
// computed independently by sssp.ShortestDistances, fanned out across a
// bounded worker pool with golang.org/x/sync/errgroup (the parallel
// scheduling model of spec §5: data parallelism over source nodes, the
// graph read read-only by every worker). Workers write into disjoint
// per-source slots, and after they finish each slot becomes one top-level
// key of the result map, so the combine step is a race-free union with no
// merge logic beyond allocation.
package closure

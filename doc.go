// Package mdbackbone computes the metric backbone of a weighted
// multiplex directed graph, where edge weights are non-negative vectors
// indexed by layer rather than scalars.
//
// Because weights are vector-valued and only partially ordered, shortest
// paths are Pareto fronts — sets of mutually incomparable minimal
// multi-distances — rather than single numbers. This package assembles:
//
//	multidist/  — the partial-order algebra over multi-distances
//	mgraph/     — the multiplex directed graph type
//	sssp/       — the Pareto single-source shortest-paths engine
//	closure/    — parallel all-pairs Pareto closure
//	oracle/     — the metric-edge predicate IsMetricInNSteps
//	backbone/   — the three backbone-extraction algorithms
//	mdbuilder/  — synthetic multiplex graph constructors for tests
//
// into the five entry points a caller actually needs: DistanceClosure,
// MultilayerBackbone, and the three StructuralBackbone* variants (naive,
// Costa, Simas), all ingesting a flat edge-tuple list (spec's external
// interface) rather than requiring callers to build a *mgraph.Graph by
// hand.
package mdbackbone

// Package oracle implements the metric-edge predicate IsMetricInNSteps
// (spec §4.E): "is the direct edge (u,v) itself a member of the Pareto
// front of u->v paths of length at most n hops?"
//
// The oracle is the one place the rest of this module reduces a full
// Pareto-front question to a single boolean, by reusing sssp's early-exit
// pruning (spec §4.C rationale): run ShortestDistances from u with
// max_depth=n and edge_compare=(v, direct-weight), and read off whether
// the resulting front at v still contains the direct weight.
package oracle

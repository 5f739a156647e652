// Package mdbuilder constructs synthetic multiplex graphs for tests,
// examples, and benchmarks: deterministic topologies (Diamond, Cycle) and
// a stochastic multiplex generator (RandomMultiplex), modeled on the
// functional-options constructor style of the repo's original builder
// package — Constructor closures that validate and populate a graph, with
// Option constructors that panic on structurally invalid input rather
// than returning an error (the invalidity is a programmer mistake, not a
// runtime condition).
package mdbuilder

// Package mgraph provides the multi-distance directed graph abstraction
// (spec §3, §4.B): a mapping from NodeID to a mapping from neighbor NodeID
// to multidist.MultiDistance.
//
// Graph is a concrete, thread-safe implementation backed by nested maps,
// mirroring katalvlaran/lvlath's core.Graph: a single sync.RWMutex guards
// both the node catalog and the adjacency, since (unlike core.Graph) there
// is only one nested map to keep consistent, not a separate vertex catalog
// and edge catalog.
//
// Algorithms in sssp, closure, and oracle are written against the Like
// interface rather than *Graph directly, so any value that can enumerate
// nodes, list a node's outgoing (target, weight) pairs, and add/remove an
// edge can stand in for Graph (spec §4.B). The backbone functions take a
// *Graph.
//
// Sink nodes — nodes with no outgoing edges — are first-class: AddEdge
// always inserts both endpoints into the node catalog, so a node reachable
// only as a target still enumerates via Nodes().
package mgraph

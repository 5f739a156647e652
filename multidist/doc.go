// Package multidist implements the partial-order algebra over
// layer-indexed multi-distances that underlies the rest of this module.
//
// A MultiDistance is a sparse non-negative vector keyed by LayerID — one
// channel per (layer_start, layer_end, layer_weight_index) triple. Unlike a
// scalar distance, two MultiDistances are not always comparable: one may be
// smaller in some layers and larger in others. This package provides:
//
//   - LayerID — the immutable key identifying a weight channel.
//   - MultiDistance — the sparse vector, with Add and a four-valued
//     partial-order comparison (Less/Equal/Greater/Incomparable).
//   - Multimin — the MULTIMIN operator reducing a slice of MultiDistances
//     to its Pareto-minimal antichain.
//
// Canonical form: a MultiDistance never stores an entry whose value is
// exactly zero. Comparisons and addition still treat any key absent from
// one operand as zero, per the partial order defined in the package spec;
// the canonical form only controls what gets persisted, not what compares
// equal.
//
// All types here are plain values with no hidden sharing or internal
// locking — callers clone freely by taking a MultiDistance by value or by
// calling Clone, and there is no global state.
package multidist

// File: algebra.go
// Role: Addition and the three-valued partial order over MultiDistance.
// AI-HINT (file):
//   - PartialCmp MUST iterate the union of both operands' keys; scanning only
//     one side misses dimensions where the other side is non-zero and silently
//     turns an Incomparable pair into Less/Greater (spec §4.A).
//   - Add is pure: it never mutates either operand.

package multidist

// Ordering is the result of comparing two MultiDistances under the
// coordinatewise partial order. Unlike a total order, two multi-distances
// may be mutually Incomparable.
type Ordering int

const (
	// Equal means a and b agree on every layer (union of keys).
	Equal Ordering = iota
	// Less means a <= b on every layer and a != b.
	Less
	// Greater means a >= b on every layer and a != b.
	Greater
	// Incomparable means a is strictly smaller on at least one layer and
	// strictly larger on at least one other layer.
	Incomparable
)

// Add returns a new MultiDistance equal to the componentwise sum of a and
// b, unioning their layer keys. Add does not mutate a or b.
//
// Complexity: O(len(a)+len(b)).
func Add(a, b MultiDistance) MultiDistance {
	if a.IsZero() {
		return b.Clone()
	}
	if b.IsZero() {
		return a.Clone()
	}

	sum := make(map[LayerID]float32, len(a.weights)+len(b.weights))
	for k, v := range a.weights {
		sum[k] = v
	}
	for k, v := range b.weights {
		sum[k] += v
	}
	// Canonical form: drop any entry that summed to exactly zero.
	for k, v := range sum {
		if v == 0 {
			delete(sum, k)
		}
	}
	if len(sum) == 0 {
		return Zero()
	}

	return MultiDistance{weights: sum}
}

// PartialCmp compares a and b under the coordinatewise partial order
// defined in spec §3, iterating the union of both operands' layer keys
// (a missing key reads as zero on that side).
//
// Complexity: O(len(a)+len(b)).
func PartialCmp(a, b MultiDistance) Ordering {
	foundLess := false    // a[k] < b[k] for some k
	foundGreater := false // a[k] > b[k] for some k

	visit := func(k LayerID) bool {
		lhs := a.Get(k)
		rhs := b.Get(k)
		if lhs < rhs {
			foundLess = true
		} else if lhs > rhs {
			foundGreater = true
		}

		return foundLess && foundGreater
	}

	for k := range a.weights {
		if visit(k) {
			return Incomparable
		}
	}
	for k := range b.weights {
		if _, ok := a.weights[k]; ok {
			continue // already visited above
		}
		if visit(k) {
			return Incomparable
		}
	}

	switch {
	case foundLess && foundGreater:
		return Incomparable
	case foundLess:
		return Less
	case foundGreater:
		return Greater
	default:
		return Equal
	}
}

// LessOrEqual reports whether a <= b (PartialCmp is Less or Equal).
func LessOrEqual(a, b MultiDistance) bool {
	switch PartialCmp(a, b) {
	case Less, Equal:
		return true
	default:
		return false
	}
}

// StrictlyLess reports whether a < b (PartialCmp is Less).
func StrictlyLess(a, b MultiDistance) bool {
	return PartialCmp(a, b) == Less
}

// StrictlyGreater reports whether a > b (PartialCmp is Greater).
func StrictlyGreater(a, b MultiDistance) bool {
	return PartialCmp(a, b) == Greater
}

// Eq reports whether a and b are equal under the definition in spec §3:
// they agree on every key present in either (missing ≡ 0).
func Eq(a, b MultiDistance) bool {
	return PartialCmp(a, b) == Equal
}

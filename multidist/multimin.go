// File: multimin.go
// Role: MULTIMIN — reduce a slice of MultiDistances to its Pareto-minimal
// antichain (spec §4.A).
// AI-HINT (file):
//   - The index window matters for correctness: element i is kept iff no
//     element in dists[i+1:] and no element already accepted into minlist
//     dominates it (c <= t). Comparing against the self-index would make
//     every element eliminate itself.
//   - This window deduplicates equal elements: given two equal inputs, the
//     first occurrence's tail-scan sees the second (c <= t) and is excluded,
//     while the later occurrence's own tail no longer contains the first,
//     so only the last occurrence survives. Scenarios S1 and S5 pin this.

package multidist

// Multimin returns the Pareto-minimal subset of dists: the elements that
// are not strictly dominated (c <= t, c != t is not required — any c <= t
// suffices to exclude t, which also deduplicates equal elements) by any
// other element of dists. Input order of the kept elements is preserved.
//
// Complexity: O(n^2) comparisons, O(n) extra space for minlist.
func Multimin(dists []MultiDistance) []MultiDistance {
	minlist := make([]MultiDistance, 0, len(dists))

	for i, t := range dists {
		dominated := false
		for _, c := range dists[i+1:] {
			if LessOrEqual(c, t) {
				dominated = true
				break
			}
		}
		if !dominated {
			for _, c := range minlist {
				if LessOrEqual(c, t) {
					dominated = true
					break
				}
			}
		}
		if !dominated {
			minlist = append(minlist, t)
		}
	}

	return minlist
}

// IsAntichain reports whether dists contains no pair of distinct elements
// where one is <= the other — i.e. whether it could have come out of
// Multimin. Used by tests to check invariant 1 of spec §8.
func IsAntichain(dists []MultiDistance) bool {
	for i := range dists {
		for j := range dists {
			if i == j {
				continue
			}
			if LessOrEqual(dists[i], dists[j]) {
				return false
			}
		}
	}

	return true
}

// Contains reports whether dists contains an element equal to target
// (spec's notion of equality, §3).
func Contains(dists []MultiDistance, target MultiDistance) bool {
	for _, d := range dists {
		if Eq(d, target) {
			return true
		}
	}

	return false
}

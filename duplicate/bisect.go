package duplicate

import "golang.org/x/exp/constraints"

// Bisect finds the duplicate by binary search over the value range [1, N].
//
// Invariant: the duplicate lies in [lo, hi]. Every value other than the
// duplicate occurs at most once, so a half [lo, mid] that holds more than
// mid-lo+1 entries must contain it; otherwise the other half does.
//
// Complexity: O(N log N) time, O(1) extra space.
type Bisect[T constraints.Integer] struct{}

// Find expects len(values) >= 2 and every value in [1, len(values)-1].
func (Bisect[T]) Find(values []T) T {
	lo, hi := 1, len(values)-1

	for lo < hi {
		mid := lo + (hi-lo)/2

		inLower := 0
		for _, v := range values {
			if x := int(v); x >= lo && x <= mid {
				inLower++
			}
		}

		if inLower > mid-lo+1 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return T(lo)
}

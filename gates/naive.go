package gates

import "golang.org/x/exp/constraints"

// Naive counts gates with a linear scan over the open gates for every arrival.
// The first free gate in allocation order is reused, which is not necessarily
// the earliest-freed one; the resulting count is still minimal.
//
// Complexity: O(N²) time, O(G) extra space.
type Naive[T constraints.Integer] struct{}

// Count expects intervals sorted by Start.
func (Naive[T]) Count(intervals []Interval[T]) int {
	var busyUntil []T

next:
	for _, iv := range intervals {
		for g := range busyUntil {
			if busyUntil[g] < iv.Start {
				busyUntil[g] = iv.End
				continue next
			}
		}
		busyUntil = append(busyUntil, iv.End)
	}

	return len(busyUntil)
}

package duplicate

import "golang.org/x/exp/constraints"

// Cycle finds the duplicate by locating the entry of the cycle in the
// functional graph i -> values[i]-1.
//
// The last index has no incoming edge (no value equals N+1), which makes it a
// safe head for the walk: the path from it is a tail followed by a cycle, and
// the first node of the cycle is the one with two predecessors.
//
// Complexity: O(N) time, O(1) extra space.
type Cycle[T constraints.Integer] struct{}

// Find expects len(values) >= 2 and every value in [1, len(values)-1].
func (Cycle[T]) Find(values []T) T {
	head := len(values) - 1
	next := func(i int) int { return int(values[i]) - 1 }

	// Phase 1: N+1 steps exceed any tail length, so we end up on the cycle.
	inCycle := head
	for range len(values) {
		inCycle = next(inCycle)
	}

	// Phase 2: cycle length.
	length := 1
	for i := next(inCycle); i != inCycle; i = next(i) {
		length++
	}

	// Phase 3: lead is `length` steps ahead of trail; they meet at the cycle entry.
	trail, lead := head, head
	for range length {
		lead = next(lead)
	}
	for trail != lead {
		trail = next(trail)
		lead = next(lead)
	}

	return T(trail + 1)
}

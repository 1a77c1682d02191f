package gates

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// MinHeap counts gates by keeping the busy-until time of every open gate in a
// min-heap. Only the earliest-freed gate needs to be checked on each arrival:
// if it is still occupied, every other gate is too.
//
// Complexity: O(N log N) time, O(G) extra space where G is the gate count.
type MinHeap[T constraints.Integer] struct{}

// Count expects intervals sorted by Start.
func (MinHeap[T]) Count(intervals []Interval[T]) int {
	pq := make(busyPQ[T], 0, len(intervals))
	heap.Init(&pq)

	for _, iv := range intervals {
		// Reuse the earliest-freed gate when it was released strictly before this arrival.
		if pq.Len() > 0 && pq[0] < iv.Start {
			pq[0] = iv.End
			heap.Fix(&pq, 0)
			continue
		}

		// Otherwise open a new gate.
		heap.Push(&pq, iv.End)
	}

	return pq.Len()
}

// busyPQ is a min-heap of busy-until times.
type busyPQ[T constraints.Integer] []T

// Len returns the number of open gates.
func (pq busyPQ[T]) Len() int { return len(pq) }

// Less orders gates by the time they become free.
func (pq busyPQ[T]) Less(i, j int) bool { return pq[i] < pq[j] }

// Swap swaps two gates in the heap.
func (pq busyPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a busy-until time; called by heap.Push.
func (pq *busyPQ[T]) Push(x any) { *pq = append(*pq, x.(T)) }

// Pop removes the last element; called by heap.Pop.
func (pq *busyPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

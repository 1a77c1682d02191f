package gates

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// eventKind orders events that share a timestamp: arrivals sort first, so a
// gate released at time T is still counted as busy for a plane arriving at T.
type eventKind uint8

const (
	arrival eventKind = iota
	departure
)

type event[T constraints.Integer] struct {
	at   T
	kind eventKind
}

// SweepLine counts gates by sweeping over arrival and departure events.
//
// Complexity: O(N log N) time for the event sort, O(N) extra space.
type SweepLine[T constraints.Integer] struct{}

// Count returns the peak number of simultaneously occupied gates.
// Input order does not matter to this strategy.
func (SweepLine[T]) Count(intervals []Interval[T]) int {
	events := make([]event[T], 0, 2*len(intervals))
	for _, iv := range intervals {
		events = append(events,
			event[T]{at: iv.Start, kind: arrival},
			event[T]{at: iv.End, kind: departure},
		)
	}

	slices.SortFunc(events, func(a, b event[T]) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.kind, b.kind)
	})

	var busy, peak int
	for _, e := range events {
		if e.kind == arrival {
			busy++
		} else {
			busy--
		}
		peak = max(peak, busy)
	}

	return peak
}

package gates

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MinGates returns the minimum number of gates needed so that every interval
// gets a gate for its whole duration.
//
// Steps:
//  1. Apply DefaultOptions and then opts in order.
//  2. Resolve the Counter for Options.Method (ErrUnknownMethod on failure).
//  3. Unless WithoutValidation was given, run Validate.
//  4. Return Counter.Count(intervals).
//
// An empty input needs zero gates.
func MinGates[T constraints.Integer](intervals []Interval[T], opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := NewCounter[T](cfg.Method)
	if err != nil {
		return 0, err
	}

	if cfg.Validate {
		if err = Validate(intervals); err != nil {
			return 0, err
		}
	}

	return c.Count(intervals), nil
}

// NewCounter resolves an algorithm name to its strategy.
func NewCounter[T constraints.Integer](method string) (Counter[T], error) {
	switch method {
	case MethodSweepLine:
		return SweepLine[T]{}, nil
	case MethodHeap:
		return MinHeap[T]{}, nil
	case MethodNaive:
		return Naive[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Validate checks the preconditions the counting strategies rely on:
// every interval has End >= Start, and Start values never decrease.
// The first violation found is reported with its index.
func Validate[T constraints.Integer](intervals []Interval[T]) error {
	for i, iv := range intervals {
		if iv.End < iv.Start {
			return fmt.Errorf("%w: index %d (%v > %v)", ErrInvertedInterval, i, iv.Start, iv.End)
		}
		if i > 0 && iv.Start < intervals[i-1].Start {
			return fmt.Errorf("%w: index %d starts at %v after %v", ErrUnsorted, i, iv.Start, intervals[i-1].Start)
		}
	}

	return nil
}

// FromPairs converts (start, end) pairs into intervals, preserving order.
func FromPairs[T constraints.Integer](pairs [][2]T) []Interval[T] {
	out := make([]Interval[T], len(pairs))
	for i, p := range pairs {
		out[i] = Interval[T]{Start: p[0], End: p[1]}
	}

	return out
}

// FromTimetable zips parallel arrival and departure tables, where
// departures[i] belongs to the plane arriving at arrivals[i].
func FromTimetable[T constraints.Integer](arrivals, departures []T) ([]Interval[T], error) {
	if len(arrivals) != len(departures) {
		return nil, fmt.Errorf("%w: %d arrivals, %d departures", ErrLengthMismatch, len(arrivals), len(departures))
	}

	out := make([]Interval[T], len(arrivals))
	for i := range arrivals {
		out[i] = Interval[T]{Start: arrivals[i], End: departures[i]}
	}

	return out, nil
}

package gates

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by MinGates, Validate, NewCounter and FromTimetable.
var (
	// ErrUnsorted indicates that intervals are not in non-decreasing Start order.
	ErrUnsorted = errors.New("gates: intervals must be sorted by start")

	// ErrInvertedInterval indicates an interval whose End precedes its Start.
	ErrInvertedInterval = errors.New("gates: interval ends before it starts")

	// ErrLengthMismatch indicates arrival and departure tables of different lengths.
	ErrLengthMismatch = errors.New("gates: arrivals and departures differ in length")

	// ErrUnknownMethod indicates an unrecognised algorithm name.
	ErrUnknownMethod = errors.New("gates: unknown method")
)

// Algorithm names accepted by WithMethod and NewCounter.
const (
	MethodSweepLine = "sweep"
	MethodHeap      = "heap"
	MethodNaive     = "naive"
)

// Interval is a single schedule: occupied from Start through End inclusive.
type Interval[T constraints.Integer] struct {
	Start T // arrival time
	End   T // departure time
}

// Counter is implemented by every gate-counting strategy.
// Count expects intervals sorted by Start and does not check it.
type Counter[T constraints.Integer] interface {
	Count(intervals []Interval[T]) int
}

// Options configures MinGates.
//
//	Method:   one of MethodSweepLine, MethodHeap, MethodNaive.
//	Validate: run Validate before counting.
type Options struct {
	Method   string
	Validate bool
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the counting algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithoutValidation skips the sortedness and interval-shape checks.
// Use it only when the caller already guarantees well-formed input.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// DefaultOptions returns sweep-line counting with validation enabled.
func DefaultOptions() Options {
	return Options{
		Method:   MethodSweepLine,
		Validate: true,
	}
}

package duplicate

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrTooShort indicates an input with fewer than two values.
	ErrTooShort = errors.New("duplicate: need at least two values")

	// ErrOutOfRange indicates a value outside [1, len(values)-1].
	ErrOutOfRange = errors.New("duplicate: value out of range")

	// ErrUnknownMethod indicates an unrecognised algorithm name.
	ErrUnknownMethod = errors.New("duplicate: unknown method")
)

// Algorithm names accepted by WithMethod and NewFinder.
const (
	MethodCycle  = "cycle"
	MethodBisect = "bisect"
)

// Finder is implemented by every duplicate-finding strategy.
// Find assumes valid input and does not check it.
type Finder[T constraints.Integer] interface {
	Find(values []T) T
}

// Options configures Find.
type Options struct {
	Method   string // MethodCycle or MethodBisect
	Validate bool   // run Validate first
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the search algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithoutValidation skips the length and range checks.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// DefaultOptions returns cycle detection with validation enabled.
func DefaultOptions() Options {
	return Options{
		Method:   MethodCycle,
		Validate: true,
	}
}

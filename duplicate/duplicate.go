package duplicate

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Find returns the value that appears more than once in values.
//
// values must have length N+1 (N >= 1) with every element in [1, N].
// Options are applied over DefaultOptions; the method is resolved before
// the input is validated.
func Find[T constraints.Integer](values []T, opts ...Option) (T, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := NewFinder[T](cfg.Method)
	if err != nil {
		return 0, err
	}

	if cfg.Validate {
		if err = Validate(values); err != nil {
			return 0, err
		}
	}

	return f.Find(values), nil
}

// NewFinder resolves an algorithm name to its strategy.
func NewFinder[T constraints.Integer](method string) (Finder[T], error) {
	switch method {
	case MethodCycle:
		return Cycle[T]{}, nil
	case MethodBisect:
		return Bisect[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Validate checks that values has at least two elements and that every
// element lies in [1, len(values)-1]. Under those conditions a duplicate is
// guaranteed and both strategies terminate.
func Validate[T constraints.Integer](values []T) error {
	if len(values) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(values))
	}

	n := len(values) - 1
	for i, v := range values {
		// uint64 keeps the upper bound exact for every integer width.
		if v < 1 || uint64(v) > uint64(n) {
			return fmt.Errorf("%w: values[%d] = %v, want 1..%d", ErrOutOfRange, i, v, n)
		}
	}

	return nil
}

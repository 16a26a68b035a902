// Package puzzle defines the contract every daily solver fulfils, a
// registry the runner resolves days from, the error categories shared by
// all days, and small input-splitting helpers.
package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all days.
var (
	// ErrMalformedInput is wrapped by every parser failure. It marks a bad
	// puzzle text, as opposed to a well-formed input with no answer.
	ErrMalformedInput = errors.New("puzzle: malformed input")
	// ErrNoAnswer indicates a well-formed input for which no answer exists.
	ErrNoAnswer = errors.New("puzzle: no answer")
	// ErrUnknownDay indicates a lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrDuplicateDay indicates a second registration for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrInvalidSolution indicates a Solution missing its day number or a part.
	ErrInvalidSolution = errors.New("puzzle: invalid solution")
)

// Part solves one half of a day's puzzle, rendering the answer as text.
type Part func(input string) (string, error)

// Solution bundles both parts of one day.
type Solution struct {
	Day   int
	Title string
	PartA Part
	PartB Part
}

// Name returns the zero-padded label used in output, e.g. "day06".
func (s Solution) Name() string {
	return fmt.Sprintf("day%02d", s.Day)
}

// validate rejects a Solution that cannot be run.
func (s Solution) validate() error {
	switch {
	case s.Day < 1 || s.Day > 25:
		return fmt.Errorf("%w: day %d outside 1..25", ErrInvalidSolution, s.Day)
	case s.PartA == nil || s.PartB == nil:
		return fmt.Errorf("%w: %s is missing a part", ErrInvalidSolution, s.Name())
	}

	return nil
}

// Answer is the subset of result types a Part may produce.
type Answer interface {
	~int | ~int64 | ~uint32 | ~uint64 | ~string
}

// Solve adapts a typed solver into a Part.
func Solve[T Answer](fn func(input string) (T, error)) Part {
	return func(input string) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}

		return fmt.Sprint(v), nil
	}
}

package mines

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is the unified failure channel for all parse errors.
// Callers that do not care which rule was violated can match it with
// [errors.Is].
var ErrInvalidGrid = errors.New("invalid grid")

// InvalidCharError reports a character outside the '#'/'.' sentinel set.
type InvalidCharError struct {
	Char rune
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("unexpected char in grid input: %q", e.Char)
}

func (e InvalidCharError) Unwrap() error { return ErrInvalidGrid }

// JaggedRowError reports a row whose length differs from the first row's.
type JaggedRowError struct {
	Expected int // length of the first row
	Row      int // index of the offending row
	Actual   int
}

func (e JaggedRowError) Error() string {
	return fmt.Sprintf(
		"jagged grid: row 0 has length %d, row %d has length %d",
		e.Expected, e.Row, e.Actual,
	)
}

func (e JaggedRowError) Unwrap() error { return ErrInvalidGrid }

// EmptyGridError reports an input with no rows, or a first row with no
// columns.
type EmptyGridError struct{}

func (e EmptyGridError) Error() string { return "empty grid" }

func (e EmptyGridError) Unwrap() error { return ErrInvalidGrid }

// AssertionError is panicked on programming-contract violations, such
// as revealing an out-of-bounds tile. It signals a bug in the caller,
// not a recoverable condition.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

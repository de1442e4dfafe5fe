package maxmin

import (
	"cmp"
	"errors"
)

var (
	// ErrEmptyInput is returned for a zero-length sequence: it has no minimum
	// and no maximum.
	ErrEmptyInput = errors.New("maxmin: input sequence is empty")

	// ErrNilLess is returned when a *Func variant is called with a nil ordering.
	ErrNilLess = errors.New("maxmin: less function is nil")
)

// Result is the outcome of a min/max selection.
type Result[T any] struct {
	// Min is the smallest element.
	Min T

	// Max is the largest element.
	Max T

	// Comparisons is the number of element comparisons charged.
	Comparisons int
}

// lessOrdered is the plain "<" ordering of cmp.Ordered types.
// Unlike cmp.Less it does not order NaN.
func lessOrdered[T cmp.Ordered](a, b T) bool {
	return a < b
}

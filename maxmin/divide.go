package maxmin

import "cmp"

// Select returns the minimum and maximum of seq using recursive
// divide-and-conquer, together with the number of comparisons made.
//
// Algorithm:
//  1. n == 0: ErrEmptyInput.
//  2. n == 1: (seq[0], seq[0], 0).
//  3. n == 2: one comparison orders the pair.
//  4. Otherwise split into seq[:n/2] and seq[n/2:], solve both halves, and
//     combine with one comparison for the minimum and one for the maximum.
//
// When two halves tie on a bound, the right half's element is kept.
//
// Complexity: O(n) time, O(log n) stack; seq is only sliced, never copied.
func Select[T cmp.Ordered](seq []T) (Result[T], error) {
	return SelectFunc(seq, lessOrdered[T])
}

// SelectFunc is Select with a caller-supplied strict ordering.
func SelectFunc[T any](seq []T, less func(a, b T) bool) (Result[T], error) {
	if less == nil {
		return Result[T]{}, ErrNilLess
	}
	if len(seq) == 0 {
		return Result[T]{}, ErrEmptyInput
	}

	return divide(seq, less), nil
}

// divide is the recursive core; len(seq) ≥ 1.
func divide[T any](seq []T, less func(a, b T) bool) Result[T] {
	switch len(seq) {
	case 1:
		return Result[T]{Min: seq[0], Max: seq[0]}
	case 2:
		if less(seq[0], seq[1]) {
			return Result[T]{Min: seq[0], Max: seq[1], Comparisons: 1}
		}

		return Result[T]{Min: seq[1], Max: seq[0], Comparisons: 1}
	}

	mid := len(seq) / 2
	left := divide(seq[:mid], less)
	right := divide(seq[mid:], less)

	res := Result[T]{
		Min:         right.Min,
		Max:         right.Max,
		Comparisons: left.Comparisons + right.Comparisons + 2,
	}
	if less(left.Min, right.Min) {
		res.Min = left.Min
	}
	if less(right.Max, left.Max) {
		res.Max = left.Max
	}

	return res
}

// DivideComparisons returns the number of comparisons Select makes on a
// sequence of length n (0 for n ≤ 1).
func DivideComparisons(n int) int {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}

	return DivideComparisons(n/2) + DivideComparisons(n-n/2) + 2
}

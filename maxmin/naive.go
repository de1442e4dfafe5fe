package maxmin

import "cmp"

// SelectNaive scans seq once, comparing every element after the first with
// both the current minimum and the current maximum: exactly 2n−2
// comparisons. It is the reference the other strategies are measured against.
func SelectNaive[T cmp.Ordered](seq []T) (Result[T], error) {
	return SelectNaiveFunc(seq, lessOrdered[T])
}

// SelectNaiveFunc is SelectNaive with a caller-supplied strict ordering.
func SelectNaiveFunc[T any](seq []T, less func(a, b T) bool) (Result[T], error) {
	if less == nil {
		return Result[T]{}, ErrNilLess
	}
	if len(seq) == 0 {
		return Result[T]{}, ErrEmptyInput
	}

	res := Result[T]{Min: seq[0], Max: seq[0]}
	for _, x := range seq[1:] {
		if less(x, res.Min) {
			res.Min = x
		}
		if less(res.Max, x) {
			res.Max = x
		}
		res.Comparisons += 2
	}

	return res, nil
}

// NaiveComparisons returns 2n−2 (0 for n ≤ 1).
func NaiveComparisons(n int) int {
	if n <= 1 {
		return 0
	}

	return 2*n - 2
}

package maxmin

import "cmp"

// SelectPairwise returns the minimum and maximum of seq by walking it two
// elements at a time.
//
// Algorithm:
//  1. Even n: order seq[0], seq[1] (1 comparison) and continue at index 2.
//     Odd n: seed both bounds with seq[0] (0 comparisons) and continue at 1.
//  2. The seeding leaves an even number of elements. For each pair (a, b)
//     one comparison orders the pair, then the smaller element is checked
//     against the minimum and the larger against the maximum.
//  3. Each pair is charged 3 comparisons whether or not a bound moves.
//
// The bounds always agree with Select; the counts may differ for lengths
// that are not powers of two.
//
// Complexity: O(n) time, O(1) memory.
func SelectPairwise[T cmp.Ordered](seq []T) (Result[T], error) {
	return SelectPairwiseFunc(seq, lessOrdered[T])
}

// SelectPairwiseFunc is SelectPairwise with a caller-supplied strict ordering.
func SelectPairwiseFunc[T any](seq []T, less func(a, b T) bool) (Result[T], error) {
	if less == nil {
		return Result[T]{}, ErrNilLess
	}
	n := len(seq)
	if n == 0 {
		return Result[T]{}, ErrEmptyInput
	}

	// 1. Seed the bounds
	var res Result[T]
	i := 1
	if n%2 == 0 {
		if less(seq[0], seq[1]) {
			res.Min, res.Max = seq[0], seq[1]
		} else {
			res.Min, res.Max = seq[1], seq[0]
		}
		res.Comparisons = 1
		i = 2
	} else {
		res.Min, res.Max = seq[0], seq[0]
	}

	// 2. Consume the rest in pairs; n-i is even after seeding, so no element
	// is left over.
	for ; i < n; i += 2 {
		a, b := seq[i], seq[i+1]

		small, large := b, a
		if less(a, b) {
			small, large = a, b
		}
		if less(small, res.Min) {
			res.Min = small
		}
		if less(res.Max, large) {
			res.Max = large
		}
		res.Comparisons += 3
	}

	return res, nil
}

// PairwiseComparisons returns the number of comparisons SelectPairwise
// charges on a sequence of length n: 3n/2−2 for even n, 3(n−1)/2 for odd n.
func PairwiseComparisons(n int) int {
	switch {
	case n <= 1:
		return 0
	case n%2 == 0:
		return 3*n/2 - 2
	}

	return 3 * (n - 1) / 2
}

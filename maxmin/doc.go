// Package maxmin selects the minimum and maximum of a sequence at the same
// time and reports how many element comparisons it took.
//
// What:
//
//   - Select:          recursive divide-and-conquer. Halves the sequence,
//     solves both halves and combines them with exactly two comparisons.
//     T(1)=0, T(2)=1, T(n)=T(⌊n/2⌋)+T(⌈n/2⌉)+2, so T(n)=3n/2−2 when n is
//     a power of two.
//   - SelectPairwise:  iterative; orders each pair with one comparison, then
//     checks the smaller one against the minimum and the larger one against
//     the maximum. Charged 3 comparisons per pair.
//   - SelectNaive:     linear scan charging 2 comparisons per element after
//     the first (2n−2), the baseline the other two improve on.
//
// Every function has a *Func twin that takes a strict "less" ordering
// instead of requiring cmp.Ordered.
//
// Why:
//
//	Comparing the counters of the three strategies on the same input is a
//	compact illustration of how divide-and-conquer saves roughly a quarter of
//	the comparisons of the obvious approach.
//
// Counting policy:
//
//	Comparisons is a side channel. It never steers the algorithm, and the
//	pairwise variant charges its nominal two bound checks per pair even when
//	no bound moves.
//
// Complexity:
//
//   - Select:         Time O(n), recursion depth O(log n), no copying.
//   - SelectPairwise: Time O(n), Memory O(1).
//   - SelectNaive:    Time O(n), Memory O(1).
//
// Errors:
//
//   - ErrEmptyInput  the sequence has no elements.
//   - ErrNilLess     a *Func variant received a nil ordering.
package maxmin

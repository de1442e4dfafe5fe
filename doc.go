// Package divconq collects small, well-documented divide-and-conquer
// algorithms with observable recursion: every routine reports how much work
// it did (sub-products, comparisons) next to its result.
//
// 🚀 What is inside?
//
//	• karatsuba — exact big-integer multiplication on base-10 digits with
//	              three sub-products per split, sign handling, tunable
//	              base-case threshold, recursion stats and a split hook
//	• maxmin    — simultaneous minimum/maximum selection with comparison
//	              counting: divide-and-conquer (3n/2−2), pairwise and the
//	              naive 2n−2 baseline, generic over cmp.Ordered or a custom less
//	• digits    — shared decimal helpers: digit count, split at 10^m,
//	              cached powers of ten
//
// ✨ Guarantees
//
//   - Pure functions: no global mutable state apart from a goroutine-safe
//     cache of powers of ten, so concurrent calls need no locking.
//   - Recursion depth is O(log n) for both algorithms.
//   - Counters are side channels and never influence results.
//   - Sentinel errors (errors.Is) for user-triggered failures; option
//     constructors panic only on programmer errors.
//
// Layout:
//
//	digits/     — DigitCount, Split, Pow10
//	karatsuba/  — Multiply, MultiplyWithStats, MultiplyInt64, Parse
//	maxmin/     — Select, SelectPairwise, SelectNaive (+ *Func variants)
//	cmd/dnc/    — command-line demonstrations (multiply, minmax, demo)
//
// Quick example:
//
//	p, _ := karatsuba.Multiply(big.NewInt(145623), big.NewInt(653324))
//	// p == 95139000852
//
//	r, _ := maxmin.Select([]int{7, -2, 9, 4, 0, 11, 3, 5})
//	// r.Min == -2, r.Max == 11, r.Comparisons == 10
//
//	go install github.com/katalvlaran/divconq/cmd/dnc@latest
package divconq

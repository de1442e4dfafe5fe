// Package digits provides the base-10 helpers shared by the decimal
// divide-and-conquer algorithms of divconq: digit counting, splitting an
// integer at a decimal boundary, and cached powers of ten.
//
// What:
//
//   - DigitCount(x): number of base-10 digits of |x|; zero has one digit.
//   - Split(x, m):   (high, low) with x == high·10^m + low and 0 ≤ low < 10^m.
//   - Pow10(m):      10^m as a shared, read-only *big.Int.
//
// Why:
//
//	Karatsuba on decimal digits splits every operand at 10^m on every level
//	of the recursion. The same handful of powers is requested over and over,
//	so they are served from a fixed table (m < 64) or from a bounded LRU cache
//	for larger exponents.
//
// Complexity:
//
//   - DigitCount: O(1) big comparisons on top of BitLen (estimate + correction).
//   - Split:      one big division, O(d²) for d-digit inputs in math/big.
//   - Pow10:      O(1) on a table or cache hit; one big.Int.Exp on a miss.
//
// Concurrency:
//
//	All functions are safe for concurrent use. Values returned by Pow10 are
//	shared between callers and MUST NOT be modified.
package digits

// Package karatsuba multiplies arbitrary-precision integers with Karatsuba's
// divide-and-conquer scheme on base-10 digits.
//
// What:
//
//	Given u = p·10^m + q and v = r·10^m + s, the product
//
//	  u·v = pr·10^(2m) + (ps + qr)·10^m + qs
//
//	needs only three recursive multiplications, because the cross term
//	ps + qr equals (p+q)(r+s) − pr − qs. Operands with at most Threshold
//	digits fall back to direct multiplication.
//
// Why:
//   - Reference implementation for teaching and comparing divide-and-conquer
//     recurrences: T(n) = 3T(n/2) + O(n) ⇒ O(n^log2(3)) ≈ O(n^1.585).
//   - Exposes the recursion (Stats, OnSplit hook) so callers can observe the
//     depth and the number of sub-products.
//
// Sign handling:
//
//	Signs are extracted once at the entry point; the recursive core only sees
//	non-negative magnitudes. The product is negative iff exactly one operand
//	is negative. A zero operand short-circuits to 0 before digit counting.
//
// Options:
//
//   - WithDigits(n)     digit-count hint for the top-level call (default: computed).
//   - WithThreshold(t)  base-case threshold, t ≥ 3 (default 3).
//   - WithOnSplit(fn)   hook invoked on every recursive split.
//
// Complexity:
//
//   - Time:   O(n^1.585) digit operations (plus math/big cost of the base cases).
//   - Memory: O(n) live big integers per level, recursion depth O(log n).
//
// Errors:
//
//   - ErrNilOperand  if u or v is nil.
//   - ErrBadOperand  from Parse on malformed input.
package karatsuba

package digits

import (
	"fmt"
	"math"
	"math/big"
)

// log10Of2 converts a bit length into a decimal digit estimate.
var log10Of2 = math.Log10(2)

// DigitCount returns the number of base-10 digits of |x|.
// By convention DigitCount(0) == 1. x must not be nil.
//
// Algorithm:
//  1. |x| ≥ 2^(b-1) where b = x.BitLen(), so ⌊(b-1)·log10(2)⌋+1 is a lower
//     bound on the digit count.
//  2. Correct the estimate against exact powers of ten (float rounding on
//     very long inputs can leave it one off in either direction).
//
// Complexity: O(1) comparisons of d-digit integers.
func DigitCount(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}

	n := int(float64(x.BitLen()-1)*log10Of2) + 1
	for n > 1 && x.CmpAbs(Pow10(n-1)) < 0 {
		n--
	}
	for x.CmpAbs(Pow10(n)) >= 0 {
		n++
	}

	return n
}

// MaxDigitCount returns max(DigitCount(a), DigitCount(b)).
func MaxDigitCount(a, b *big.Int) int {
	return max(DigitCount(a), DigitCount(b))
}

// Split decomposes x at the decimal boundary m:
//
//	high = ⌊x / 10^m⌋
//	low  = x mod 10^m
//
// so that x == high·10^m + low and 0 ≤ low < 10^m. Division is floored, so
// the invariant holds for negative x as well (Split(-7, 1) == (-1, 3)).
// Both results are freshly allocated; x is not modified.
// Panics if m < 0.
func Split(x *big.Int, m int) (high, low *big.Int) {
	if m < 0 {
		panic(fmt.Sprintf("digits: Split at negative boundary %d", m))
	}
	high, low = new(big.Int), new(big.Int)
	if m == 0 {
		return high.Set(x), low
	}

	// DivMod is Euclidean; with a positive divisor that is floor division.
	high.DivMod(x, Pow10(m), low)

	return high, low
}

// Shift returns x·10^m as a new value. Panics if m < 0.
func Shift(x *big.Int, m int) *big.Int {
	return new(big.Int).Mul(x, Pow10(m))
}

package karatsuba

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/divconq/digits"
)

// multiplier carries the options and counters of one top-level call.
type multiplier struct {
	opts  Options
	stats Stats
}

// Multiply returns the exact product u·v computed with Karatsuba's method.
// Neither operand is modified.
//
// Example:
//
//	p, err := karatsuba.Multiply(big.NewInt(145623), big.NewInt(653324))
//	// p == 95139000852
func Multiply(u, v *big.Int, opts ...Option) (*big.Int, error) {
	p, _, err := MultiplyWithStats(u, v, opts...)

	return p, err
}

// MultiplyWithStats is Multiply that also reports recursion statistics.
func MultiplyWithStats(u, v *big.Int, opts ...Option) (*big.Int, Stats, error) {
	// 1. Validate operands
	if u == nil || v == nil {
		return nil, Stats{}, ErrNilOperand
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	k := &multiplier{opts: o}

	// 3. Extract signs, recurse on magnitudes
	negative := (u.Sign() < 0) != (v.Sign() < 0)
	a := new(big.Int).Abs(u)
	b := new(big.Int).Abs(v)

	// A hint beyond the operands only adds zero-padded splits (and a huge
	// 10^m on the first one), so cap it one digit above the real size.
	if o.Digits > 0 {
		o.Digits = min(o.Digits, digits.MaxDigitCount(a, b)+1)
	}
	product := k.mul(a, b, o.Digits, 0)

	// 4. Reapply the sign
	if negative {
		product.Neg(product)
	}

	return product, k.stats, nil
}

// MultiplyInt64 multiplies two int64 values without overflow.
func MultiplyInt64(a, b int64) *big.Int {
	p, _ := Multiply(big.NewInt(a), big.NewInt(b))

	return p
}

// Parse reads a base-10 integer with an optional leading sign.
// Surrounding whitespace is ignored; anything else malformed yields ErrBadOperand.
func Parse(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadOperand, s)
	}

	return x, nil
}

// mul multiplies the non-negative magnitudes u and v. n is the digit-count
// hint (0 = compute it). The result is always a fresh value, and u, v are
// never modified.
func (k *multiplier) mul(u, v *big.Int, n, depth int) *big.Int {
	k.stats.Calls++
	if depth > k.stats.MaxDepth {
		k.stats.MaxDepth = depth
	}

	// Zero short-circuit, before any digit counting.
	if u.Sign() == 0 || v.Sign() == 0 {
		k.stats.ZeroShortcuts++

		return new(big.Int)
	}

	if n <= 0 {
		n = digits.MaxDigitCount(u, v)
	}

	// Base case: splitting costs more than it saves.
	if n <= k.opts.Threshold {
		k.stats.BaseCases++

		return new(big.Int).Mul(u, v)
	}

	// m = ⌈n/2⌉; u = p·10^m + q, v = r·10^m + s
	m := (n + 1) / 2
	k.stats.Splits++
	if k.opts.OnSplit != nil {
		k.opts.OnSplit(depth, n, m)
	}
	p, q := digits.Split(u, m)
	r, s := digits.Split(v, m)

	// Three sub-products; p+q and r+s may carry into one extra digit.
	pr := k.mul(p, r, m, depth+1)
	qs := k.mul(q, s, m, depth+1)
	y := k.mul(new(big.Int).Add(p, q), new(big.Int).Add(r, s), m+1, depth+1)

	// Cross term: y − pr − qs == p·s + q·r
	mid := y.Sub(y, pr)
	mid.Sub(mid, qs)

	// pr·10^(2m) + mid·10^m + qs
	result := pr.Mul(pr, digits.Pow10(2*m))
	result.Add(result, mid.Mul(mid, digits.Pow10(m)))

	return result.Add(result, qs)
}

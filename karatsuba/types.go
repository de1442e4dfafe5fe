package karatsuba

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOperand is returned when a nil *big.Int is passed to Multiply.
	ErrNilOperand = errors.New("karatsuba: operand is nil")

	// ErrBadOperand is returned by Parse when the input is not a base-10 integer.
	ErrBadOperand = errors.New("karatsuba: operand is not a base-10 integer")
)

const (
	// DefaultThreshold is the digit count at or below which the product is
	// computed directly.
	DefaultThreshold = 3

	// MinThreshold is the smallest threshold for which the recursion
	// terminates: for n ≥ 4 the hint m+1 = ⌈n/2⌉+1 is strictly below n,
	// while n = 3 would recurse on (p+q)(r+s) with the same hint forever.
	MinThreshold = 3
)

// Option configures a multiplication. Use with Multiply(u, v, opts...).
type Option func(*Options)

// Options holds the tunables of the recursion.
type Options struct {
	// Digits is the digit-count hint for the top-level call.
	// Zero means "compute max(DigitCount(u), DigitCount(v))".
	Digits int

	// Threshold is the base-case bound: n ≤ Threshold multiplies directly.
	Threshold int

	// OnSplit, if non-nil, is called every time the recursion splits
	// operands of n digits at boundary m; depth is 0 at the top level.
	OnSplit func(depth, n, m int)
}

// DefaultOptions returns Options with a computed digit count, the default
// threshold and no hook.
func DefaultOptions() Options {
	return Options{
		Digits:    0,
		Threshold: DefaultThreshold,
		OnSplit:   nil,
	}
}

// WithDigits sets the digit-count hint of the top-level call.
// The hint only steers where the first split happens; the product is exact
// for any positive hint. Hints above max(DigitCount(u), DigitCount(v))+1 are
// capped to that value. Panics if n < 1.
func WithDigits(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("karatsuba: WithDigits(%d): hint must be >= 1", n))
	}
	return func(o *Options) {
		o.Digits = n
	}
}

// WithThreshold sets the base-case threshold. Panics if t < MinThreshold.
func WithThreshold(t int) Option {
	if t < MinThreshold {
		panic(fmt.Sprintf("karatsuba: WithThreshold(%d): threshold must be >= %d", t, MinThreshold))
	}
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithOnSplit installs fn as the split hook. A nil fn disables the hook.
func WithOnSplit(fn func(depth, n, m int)) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// Stats reports how the recursion unfolded. The counters are observational
// and never influence the product.
type Stats struct {
	// Calls counts invocations of the recursive core, the top level included.
	Calls int

	// Splits counts calls that divided their operands (3 sub-products each).
	Splits int

	// BaseCases counts calls answered by direct multiplication.
	BaseCases int

	// ZeroShortcuts counts calls answered immediately because an operand was 0.
	ZeroShortcuts int

	// MaxDepth is the deepest recursion level reached (top level = 0).
	MaxDepth int
}

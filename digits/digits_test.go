package digits_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divconq/digits"
)

// mustBig parses a base-10 literal or fails the test.
func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	x, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)

	return x
}

// randomBig returns a random integer with exactly d digits and random sign.
func randomBig(r *rand.Rand, d int) *big.Int {
	var sb strings.Builder
	if r.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte(byte('1' + r.Intn(9)))
	for i := 1; i < d; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	x, _ := new(big.Int).SetString(sb.String(), 10)

	return x
}

func TestDigitCount_Table(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 1},
		{"7", 1},
		{"-7", 1},
		{"9", 1},
		{"10", 2},
		{"99", 2},
		{"100", 3},
		{"145", 3},
		{"-145", 3},
		{"999999999999999999", 18},
		{"1000000000000000000", 19},
		{"18446744073709551615", 20},
		{"18446744073709551616", 20},
		{"1" + strings.Repeat("0", 63), 64},
		{strings.Repeat("9", 64), 64},
		{"1" + strings.Repeat("0", 64), 65},
		{strings.Repeat("9", 1000), 1000},
		{"1" + strings.Repeat("0", 1000), 1001},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, digits.DigitCount(mustBig(t, tc.in)), "DigitCount(%s)", tc.in)
	}
}

func TestDigitCount_MatchesDecimalText(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		x := randomBig(r, 1+r.Intn(400))
		want := len(new(big.Int).Abs(x).Text(10))
		assert.Equal(t, want, digits.DigitCount(x), "DigitCount(%s)", x)
	}
}

func TestMaxDigitCount(t *testing.T) {
	assert.Equal(t, 6, digits.MaxDigitCount(big.NewInt(145623), big.NewInt(-12)))
	assert.Equal(t, 1, digits.MaxDigitCount(big.NewInt(0), big.NewInt(0)))
}

func TestSplit_Examples(t *testing.T) {
	high, low := digits.Split(big.NewInt(145623), 3)
	assert.Equal(t, int64(145), high.Int64())
	assert.Equal(t, int64(623), low.Int64())

	// Boundary larger than the number: everything goes low.
	high, low = digits.Split(big.NewInt(42), 5)
	assert.Zero(t, high.Sign())
	assert.Equal(t, int64(42), low.Int64())

	// Zero boundary keeps x intact.
	high, low = digits.Split(big.NewInt(-42), 0)
	assert.Equal(t, int64(-42), high.Int64())
	assert.Zero(t, low.Sign())

	// Floor semantics on negative input.
	high, low = digits.Split(big.NewInt(-7), 1)
	assert.Equal(t, int64(-1), high.Int64())
	assert.Equal(t, int64(3), low.Int64())
}

func TestSplit_Invariant(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		x := randomBig(r, 1+r.Intn(300))
		m := r.Intn(320)
		orig := new(big.Int).Set(x)

		high, low := digits.Split(x, m)
		require.Equal(t, 0, orig.Cmp(x), "Split must not modify its input")

		recomposed := new(big.Int).Add(digits.Shift(high, m), low)
		assert.Equal(t, 0, recomposed.Cmp(x), "high·10^%d + low != x for %s", m, x)
		assert.GreaterOrEqual(t, low.Sign(), 0, "low must be non-negative")
		assert.Equal(t, -1, low.Cmp(digits.Pow10(m)), "low must be < 10^%d", m)
	}
}

func TestSplit_NegativeBoundaryPanics(t *testing.T) {
	assert.Panics(t, func() { digits.Split(big.NewInt(1), -1) })
}

func TestPow10(t *testing.T) {
	assert.Equal(t, "1", digits.Pow10(0).String())
	assert.Equal(t, "1000", digits.Pow10(3).String())
	for _, m := range []int{63, 64, 65, 300, 1200} {
		p := digits.Pow10(m)
		assert.Equal(t, "1"+strings.Repeat("0", m), p.String(), "Pow10(%d)", m)
		// Second lookup is served from the table or cache.
		assert.Same(t, p, digits.Pow10(m), "Pow10(%d) should be memoised", m)
	}
	assert.Panics(t, func() { digits.Pow10(-1) })
}

func TestPow10_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(seed int64) {
			defer func() { done <- struct{}{} }()
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				m := 64 + r.Intn(600)
				assert.Equal(t, m+1, len(digits.Pow10(m).String()))
			}
		}(int64(g))
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}

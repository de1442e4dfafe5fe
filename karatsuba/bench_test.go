package karatsuba_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/divconq/karatsuba"
)

// operands builds two d-digit positive integers from a fixed seed.
func operands(d int) (*big.Int, *big.Int) {
	r := rand.New(rand.NewSource(int64(d)))
	build := func() *big.Int {
		buf := make([]byte, d)
		buf[0] = byte('1' + r.Intn(9))
		for i := 1; i < d; i++ {
			buf[i] = byte('0' + r.Intn(10))
		}
		x, _ := new(big.Int).SetString(string(buf), 10)

		return x
	}

	return build(), build()
}

func benchmarkMultiply(b *testing.B, d int, opts ...karatsuba.Option) {
	x, y := operands(d)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := karatsuba.Multiply(x, y, opts...); err != nil {
			b.Fatalf("Multiply failed: %v", err)
		}
	}
}

func BenchmarkMultiply_100(b *testing.B)  { benchmarkMultiply(b, 100) }
func BenchmarkMultiply_1000(b *testing.B) { benchmarkMultiply(b, 1000) }

// BenchmarkMultiply_1000_Threshold32 shows the effect of a larger base case.
func BenchmarkMultiply_1000_Threshold32(b *testing.B) {
	benchmarkMultiply(b, 1000, karatsuba.WithThreshold(32))
}

// BenchmarkBigMul_1000 is the math/big baseline.
func BenchmarkBigMul_1000(b *testing.B) {
	x, y := operands(1000)
	z := new(big.Int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
	}
}

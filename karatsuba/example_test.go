package karatsuba_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/divconq/karatsuba"
)

// ExampleMultiply multiplies two six-digit numbers and checks the result
// against direct multiplication.
func ExampleMultiply() {
	x, y := big.NewInt(145623), big.NewInt(653324)

	p, err := karatsuba.Multiply(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p, p.Cmp(new(big.Int).Mul(x, y)) == 0)
	// Output:
	// 95139000852 true
}

// ExampleMultiply_negative shows the sign rule.
func ExampleMultiply_negative() {
	p, _ := karatsuba.Multiply(big.NewInt(-12345), big.NewInt(67890))
	fmt.Println(p)
	// Output:
	// -838102050
}

// ExampleMultiplyWithStats traces every split of the recursion.
func ExampleMultiplyWithStats() {
	trace := karatsuba.WithOnSplit(func(depth, n, m int) {
		fmt.Printf("depth=%d n=%d m=%d\n", depth, n, m)
	})

	_, stats, _ := karatsuba.MultiplyWithStats(big.NewInt(145623), big.NewInt(653324), trace)
	fmt.Printf("calls=%d base=%d depth=%d\n", stats.Calls, stats.BaseCases, stats.MaxDepth)
	// Output:
	// depth=0 n=6 m=3
	// depth=1 n=4 m=2
	// calls=7 base=5 depth=2
}

package digits

import (
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

const (
	// tableSize is the number of powers 10^0..10^63 kept in pow10Table.
	tableSize = 64

	// cacheSize bounds the number of larger powers memoised in pow10Cache.
	// A d-digit Karatsuba multiplication touches O(log d) distinct exponents
	// per operand size, so a few hundred entries cover very large inputs.
	cacheSize = 256
)

var (
	pow10Table = newPow10Table()
	pow10Cache = newPow10Cache(cacheSize)
)

// newPow10Table builds 10^0 … 10^(tableSize-1) by repeated multiplication.
func newPow10Table() [tableSize]*big.Int {
	var t [tableSize]*big.Int
	ten := big.NewInt(10)
	t[0] = big.NewInt(1)
	for i := 1; i < tableSize; i++ {
		t[i] = new(big.Int).Mul(t[i-1], ten)
	}

	return t
}

// newPow10Cache allocates the LRU for exponents beyond the table.
// lru.New only fails on a non-positive size, which is a programmer error.
func newPow10Cache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(fmt.Sprintf("digits: pow10 cache: %v", err))
	}

	return c
}

// Pow10 returns 10^m.
//
// The result is shared with other callers and must be treated as read-only;
// copy it with new(big.Int).Set before mutating. Panics if m < 0.
func Pow10(m int) *big.Int {
	if m < 0 {
		panic(fmt.Sprintf("digits: Pow10(%d): negative exponent", m))
	}
	if m < tableSize {
		return pow10Table[m]
	}
	if v, ok := pow10Cache.Get(m); ok {
		return v.(*big.Int)
	}

	p := new(big.Int).Exp(pow10Table[1], big.NewInt(int64(m)), nil)
	pow10Cache.Add(m, p)

	return p
}

package main

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/divconq/karatsuba"
)

// demoProducts are the fixed multiplication cases of the demo.
var demoProducts = [][2]string{
	{"145623", "653324"},
	{"0", "123456"},
	{"123", "456"},
	{"9999", "9999"},
	{"-12345", "67890"},
	{"-1234567", "-8901234"},
	{"100000000000000012345", "1000000000000067890"},
}

// demoSequences are the fixed min/max cases of the demo.
var demoSequences = [][]float64{
	{7, -2, 9, 4, 0, 11, 3, 5},
	{5},
	{2, 1},
	{3.5, -1, 8, 2, 7},
	{4, 4, 4, 4},
}

var demoCommand = cli.Command{
	Name:  "demo",
	Usage: "run the fixed examples and verify them against reference results",
	Action: func(c *cli.Context) error {
		if failed := runDemo(c.App.Writer); failed > 0 {
			return cli.NewExitError(fmt.Sprintf("demo: %d case(s) failed", failed), 1)
		}

		return nil
	},
}

// runDemo prints one line per case and returns the number of failures.
func runDemo(w io.Writer) int {
	failed := 0

	fmt.Fprintln(w, "Karatsuba multiplication")
	for _, pc := range demoProducts {
		if !checkProduct(w, pc[0], pc[1]) {
			failed++
		}
	}

	fmt.Fprintln(w, "MaxMin selection")
	for _, seq := range demoSequences {
		if !checkSelection(w, seq) {
			failed++
		}
	}

	return failed
}

// checkProduct compares Karatsuba with math/big for one pair of literals.
func checkProduct(w io.Writer, a, b string) bool {
	u, err := karatsuba.Parse(a)
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", status(false), err)

		return false
	}
	v, err := karatsuba.Parse(b)
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", status(false), err)

		return false
	}

	got, err := karatsuba.Multiply(u, v)
	ok := err == nil && got.Cmp(new(big.Int).Mul(u, v)) == 0
	fmt.Fprintf(w, "%s %s × %s = %s\n", status(ok), u, v, got)

	return ok
}

// checkSelection runs every strategy on seq and compares it with slices.Min/Max.
func checkSelection(w io.Writer, seq []float64) bool {
	wantMin, wantMax := slices.Min(seq), slices.Max(seq)
	all := true
	for _, s := range strategies {
		res, err := s.fn(seq)
		ok := err == nil && res.Min == wantMin && res.Max == wantMax
		all = all && ok
		fmt.Fprintf(w, "%s %-8s %v → min=%v max=%v comparisons=%d\n",
			status(ok), s.name, seq, res.Min, res.Max, res.Comparisons)
	}

	return all
}

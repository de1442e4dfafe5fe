// Command dnc runs the divide-and-conquer demonstrations: Karatsuba
// multiplication and simultaneous min/max selection.
//
// Usage:
//
//	dnc multiply [--threshold N] -- A B
//	dnc minmax [--method divide|pairwise|naive|all] -- X1 X2 ...
//	dnc demo
//
// Put "--" before operands that start with a minus sign.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("dnc: %v", err))
		os.Exit(1)
	}
}

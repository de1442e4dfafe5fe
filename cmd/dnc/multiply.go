package main

import (
	"fmt"
	"math/big"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/divconq/karatsuba"
)

var multiplyCommand = cli.Command{
	Name:      "multiply",
	Usage:     "multiply two integers with Karatsuba and check against math/big",
	ArgsUsage: "A B",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "threshold, t",
			Value: karatsuba.DefaultThreshold,
			Usage: fmt.Sprintf("base-case digit threshold (>= %d)", karatsuba.MinThreshold),
		},
	},
	Action: multiplyAction,
}

func multiplyAction(c *cli.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return fmt.Errorf("multiply: want 2 operands, got %d", len(args))
	}
	u, err := karatsuba.Parse(args.Get(0))
	if err != nil {
		return fmt.Errorf("multiply: %w", err)
	}
	v, err := karatsuba.Parse(args.Get(1))
	if err != nil {
		return fmt.Errorf("multiply: %w", err)
	}
	threshold := c.Int("threshold")
	if threshold < karatsuba.MinThreshold {
		return fmt.Errorf("multiply: threshold %d is below %d", threshold, karatsuba.MinThreshold)
	}

	p, stats, err := karatsuba.MultiplyWithStats(u, v, karatsuba.WithThreshold(threshold))
	if err != nil {
		return fmt.Errorf("multiply: %w", err)
	}
	direct := new(big.Int).Mul(u, v)

	w := c.App.Writer
	fmt.Fprintf(w, "karatsuba: %s\n", p)
	fmt.Fprintf(w, "direct:    %s\n", direct)
	fmt.Fprintf(w, "%s products match\n", status(p.Cmp(direct) == 0))
	fmt.Fprintf(w, "calls=%d splits=%d base=%d zero=%d depth=%d\n",
		stats.Calls, stats.Splits, stats.BaseCases, stats.ZeroShortcuts, stats.MaxDepth)

	return nil
}

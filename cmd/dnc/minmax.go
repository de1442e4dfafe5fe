package main

import (
	"fmt"
	"strconv"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/divconq/maxmin"
)

// strategies maps --method values to selectors, in print order.
var strategies = []struct {
	name string
	fn   func([]float64) (maxmin.Result[float64], error)
}{
	{"divide", maxmin.Select[float64]},
	{"pairwise", maxmin.SelectPairwise[float64]},
	{"naive", maxmin.SelectNaive[float64]},
}

var minmaxCommand = cli.Command{
	Name:      "minmax",
	Usage:     "select min and max of the given numbers and report comparisons",
	ArgsUsage: "X1 X2 ...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "method, m",
			Value: "all",
			Usage: "divide, pairwise, naive or all",
		},
	},
	Action: minmaxAction,
}

func minmaxAction(c *cli.Context) error {
	seq := make([]float64, 0, len(c.Args()))
	for _, a := range c.Args() {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("minmax: %q is not a number: %w", a, err)
		}
		seq = append(seq, x)
	}

	method := c.String("method")
	w := c.App.Writer
	matched := false
	for _, s := range strategies {
		if method != "all" && method != s.name {
			continue
		}
		matched = true
		res, err := s.fn(seq)
		if err != nil {
			return fmt.Errorf("minmax: %w", err)
		}
		fmt.Fprintf(w, "%-8s min=%v max=%v comparisons=%d\n", s.name, res.Min, res.Max, res.Comparisons)
	}
	if !matched {
		return fmt.Errorf("minmax: unknown method %q", method)
	}

	return nil
}

package main

import (
	"io"

	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"
)

// newApp wires the sub-commands; every command writes to out.
func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "dnc"
	app.Usage = "divide-and-conquer demonstrations"
	app.Version = "0.1.0"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable coloured status markers",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("no-color") {
			color.NoColor = true
		}

		return nil
	}
	app.Commands = []cli.Command{
		multiplyCommand,
		minmaxCommand,
		demoCommand,
	}

	return app
}

// status renders a pass/fail marker.
func status(ok bool) string {
	if ok {
		return color.GreenString("[ OK ]")
	}

	return color.RedString("[FAIL]")
}

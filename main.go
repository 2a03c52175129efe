package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultRPC := os.Getenv("RATIONAL_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.RPCPort)
	}

	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact arithmetic on arbitrary precision rational numbers."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable RATIONAL_RPC",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML config file",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "reduce",
			Usage:     "Print a rational number in lowest terms",
			ArgsUsage: "N/D",
			Action:    reduceCmd,
		},
		{
			Name:      "add",
			Usage:     "Add two rational numbers",
			ArgsUsage: "X Y",
			Action:    arithmeticCmd,
		},
		{
			Name:      "sub",
			Usage:     "Subtract the second rational number from the first",
			ArgsUsage: "X Y",
			Action:    arithmeticCmd,
		},
		{
			Name:      "mul",
			Usage:     "Multiply two rational numbers",
			ArgsUsage: "X Y",
			Action:    arithmeticCmd,
		},
		{
			Name:      "div",
			Usage:     "Divide the first rational number by the second",
			ArgsUsage: "X Y",
			Action:    arithmeticCmd,
		},
		{
			Name:      "compare",
			Usage:     "Print -1, 0 or 1 as the first rational number is less than, equal to or greater than the second",
			ArgsUsage: "X Y",
			Action:    compareCmd,
		},
		{
			Name:      "inrange",
			Usage:     "Check whether LO <= X <= HI",
			ArgsUsage: "X LO HI",
			Action:    inRangeCmd,
		},
		{
			Name:      "decimal",
			Usage:     "Print a rational number as a rounded decimal",
			ArgsUsage: "X",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "places",
					Aliases: []string{"p"},
					Value:   -1,
					Usage:   "the digits after the point, the config precision by default",
				},
			},
		},
		{
			Name:      "eval",
			Usage:     "Evaluate a postfix program, e.g. '1/2 1/3 + s:x l:x 2 *'",
			ArgsUsage: "PROGRAM",
			Action:    evalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the data directory for persistent registers",
				},
			},
		},
		{
			Name:   "daemon",
			Usage:  "Start the RPC server with persistent registers",
			Action: daemonCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the data directory",
				},
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the RPC port to listen, overrides the config",
				},
				&cli.IntFlag{
					Name:    "log",
					Aliases: []string{"l"},
					Value:   logger.INFO,
					Usage:   "the log level",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "the RE2 regex pattern to filter log",
				},
			},
		},
		{
			Name:      "call",
			Usage:     "Call the RPC method with the params",
			ArgsUsage: "METHOD [PARAM...]",
			Action:    callCmd,
		},
	}
	return app
}

/*
Package main defines the `dice` CLI built on github.com/travis-g/diceroll.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli"

	"github.com/travis-g/diceroll/cmd/dice/command"
)

func main() {
	cmd := cli.NewApp()
	cmd.Name = "dice"
	cmd.Usage = "CLI dice roller"
	cmd.Version = "0.1.0"

	// globalFlags should be set up so that they can be used anywhere in the
	// command
	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:   "format",
			Value:  "",
			Usage:  "output format",
			EnvVar: "FORMAT",
		},
		&cli.StringFlag{
			Name:   "field",
			Value:  "",
			Usage:  "output specific field (unimplemented)",
			EnvVar: "FIELD",
		},
		&cli.BoolFlag{
			Name:   "debug",
			Usage:  "print the parsed AST before rolling",
			EnvVar: "DEBUG",
		},
	}

	httpFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:   "http",
			Value:  ":6436", // hex of ASCII "d6"
			Usage:  "HTTP service address",
			EnvVar: "HTTP",
		},
	}, globalFlags...)

	cmd.Commands = []cli.Command{
		{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "evaluate a dice expression",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.EvalCommand(c)
			},
		},
		{
			Name:  "repl",
			Usage: "enter a REPL mode",
			Flags: globalFlags,
			Action: func(c *cli.Context) error {
				return command.REPLCommand(c)
			},
		},
		{
			Name:    "roll",
			Aliases: []string{"r"},
			Usage:   "roll a dice expression",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.RollCommand(c)
			},
		},
		{
			Name:  "dices",
			Usage: "list the individual dice terms in an expression",
			Flags: globalFlags,
			Action: func(c *cli.Context) error {
				return command.DicesCommand(c)
			},
		},
		{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "start an HTTP server",
			Flags:   httpFlags,
			Action: func(c *cli.Context) error {
				return command.ServerCommand(c)
			},
		},
	}

	sort.Sort(cli.FlagsByName(cmd.Flags))
	sort.Sort(cli.CommandsByName(cmd.Commands))

	err := cmd.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

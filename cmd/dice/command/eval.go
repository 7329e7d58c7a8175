package command

import (
	"github.com/urfave/cli"
)

// EvalCommand evaluates the first argument as a dice notation expression
// and prints the result. It is kept as a separate, aliasable subcommand
// for players who think of "2+2" as an evaluation rather than a roll, but
// it solves through the same Solver as RollCommand.
func EvalCommand(c *cli.Context) error {
	return RollCommand(c)
}

package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/travis-g/diceroll"
)

// RollCommand solves the dice notation expression passed as the command's
// first argument and prints the result. With --debug it first prints the
// parsed AST via repr.
func RollCommand(c *cli.Context) error {
	solver := diceroll.NewSolver(c.Args().Get(0))

	if c.Bool("debug") {
		bare := diceroll.NewSolver(solver.AsStr())
		bare.TrimReason()
		cmd, err := diceroll.NewParser().Parse(bare.AsStr())
		if err != nil {
			return err
		}
		fmt.Println(toRepr(cmd))
	}

	result, err := solver.Solve()
	if err != nil {
		return err
	}
	out, err := Output(c, result)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// DicesCommand lists every individual dice term in the expression passed
// as the command's first argument, without rolling them.
func DicesCommand(c *cli.Context) error {
	solver := diceroll.NewSolver(c.Args().Get(0))
	dices, err := solver.Dices()
	if err != nil {
		return err
	}
	for _, d := range dices {
		amount := uint64(1)
		if d.Amount != nil {
			amount = *d.Amount
		}
		switch {
		case d.Fudge:
			fmt.Printf("%ddF\n", amount)
		case d.Sides != nil:
			fmt.Printf("%dd%d\n", amount, *d.Sides)
		}
	}
	return nil
}

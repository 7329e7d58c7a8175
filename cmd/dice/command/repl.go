package command

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/travis-g/diceroll"
)

const replPrompt = ">>> "

// REPLCommand reads dice notation lines from stdin, solving and printing
// each until "quit" or EOF.
func REPLCommand(c *cli.Context) error {
	scanner := bufio.NewScanner(os.Stdin)

	in, _ := os.Stdin.Stat()
	interactive := (in.Mode() & os.ModeCharDevice) != 0

	for {
		if interactive {
			fmt.Fprint(os.Stderr, replPrompt)
		}
		if !scanner.Scan() {
			return nil
		}

		line := scanner.Text()
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		result, err := diceroll.NewSolver(line).Solve()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		out, err := Output(c, result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
}

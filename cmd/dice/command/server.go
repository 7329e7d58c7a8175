package command

import (
	"github.com/urfave/cli"

	"github.com/travis-g/diceroll/server"
)

// ServerCommand starts the HTTP front-end defined in package server,
// listening on the address given by the --http flag.
func ServerCommand(c *cli.Context) error {
	_, err := server.Run(c.String("http"), c.Bool("debug"))
	return err
}

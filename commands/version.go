package commands

import (
	"fmt"

	"github.com/activecm/leakhunt/config"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:   "version",
		Usage:  "Show leakhunt version",
		Action: showVersion,
	}

	bootstrapCommands(command)
}

func showVersion(c *cli.Context) error {
	fmt.Println(config.Version)
	return nil
}

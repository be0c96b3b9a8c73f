package commands

import (
	"github.com/urfave/cli"
)

var (
	allCommands []cli.Command

	// below are some prebuilt flags that get used often in various commands

	// configFlag allows users to specify an alternate config file to use
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	// databaseFlag selects the database holding leak reports
	databaseFlag = cli.StringFlag{
		Name:  "database, d",
		Usage: "Store or read leak reports in `DATABASE`",
		Value: "",
	}

	humanFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "Print a report instead of csv",
	}

	threadsFlag = cli.IntFlag{
		Name:  "threads, t",
		Usage: "Use `N` analysis threads, defaults to Detection.Threads from the config",
		Value: 0,
	}

	limitFlag = cli.IntFlag{
		Name:  "limit, li",
		Usage: "Print at most `LIMIT` results, ordered by run and AS",
		Value: 1000,
	}

	noLimitFlag = cli.BoolFlag{
		Name:  "no-limit, nl",
		Usage: "Print all results",
	}
)

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	allCommands = append(allCommands, commands...)
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

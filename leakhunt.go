package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/activecm/leakhunt/commands"
	"github.com/activecm/leakhunt/config"
	"github.com/urfave/cli"
)

// Entry point of leakhunt
func main() {
	app := cli.NewApp()
	app.Name = "leakhunt"
	app.Usage = "Look for route leaks in BGP visibility series."

	// Change the version string with updates so that a quick help command will
	// let the testers know what version of leakhunt they're on
	app.Version = config.Version

	// Define commands used with this application
	app.Commands = commands.Commands()

	runtime.GOMAXPROCS(runtime.NumCPU())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

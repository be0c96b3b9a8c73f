package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/resources"
	"github.com/globalsign/mgo"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "delete-run",
		Usage:     "Delete the leak reports of a detection run",
		ArgsUsage: "<run id>",
		Flags: []cli.Flag{
			configFlag,
			cli.BoolFlag{
				Name:  "force, f",
				Usage: "Do not ask for confirmation",
			},
		},
		Action: func(c *cli.Context) error {
			runID := c.Args().Get(0)
			if runID == "" {
				return cli.NewExitError("Specify a run id", -1)
			}

			if !c.Bool("force") {
				fmt.Print("Are you sure you want to delete run ", runID, " [y/N] ")

				read := bufio.NewReader(os.Stdin)

				response, err := read.ReadString('\n')
				if err != nil {
					return cli.NewExitError(err.Error(), -1)
				}
				response = strings.ToLower(strings.TrimSpace(response))

				if response != "y" && response != "yes" {
					return cli.NewExitError("Run "+runID+" was not deleted.", 0)
				}
			}

			res := resources.InitResources(c.String("config"))
			if err := res.ConnectDB(); err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return deleteRun(res, runID)
		},
	}

	bootstrapCommands(command)
}

func deleteRun(res *resources.Resources, runID string) error {
	run, err := res.MetaDB.GetRun(runID)
	if err == mgo.ErrNotFound {
		return cli.NewExitError("Error: no run recorded as "+runID, -1)
	}
	if err != nil {
		return cli.NewExitError("Error: could not delete run: "+err.Error(), -1)
	}

	fmt.Println("Deleting run", runID, "from database", run.Database)
	res.DB.SelectDB(run.Database)

	removed, err := leak.RemoveRun(res, runID)
	if err != nil {
		return cli.NewExitError("Error: could not delete run: "+err.Error(), -1)
	}

	err = res.MetaDB.DeleteRun(runID)
	if err != nil {
		return cli.NewExitError("Error: could not delete run: "+err.Error(), -1)
	}

	res.Log.WithFields(log.Fields{
		"run_id":  runID,
		"removed": removed,
	}).Info("Run deleted")
	return nil
}

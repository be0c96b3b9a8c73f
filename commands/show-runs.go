package commands

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/activecm/leakhunt/database"
	"github.com/activecm/leakhunt/resources"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-runs",
		Usage:     "Print the detection runs recorded in the meta database",
		ArgsUsage: "[database]",
		UsageText: "leakhunt show-runs [command-options] [database]\n\n" +
			"If no database is specified, the runs of every database are printed.",
		Flags: []cli.Flag{
			configFlag,
			humanFlag,
		},
		Action: func(c *cli.Context) error {
			res := resources.InitResources(c.String("config"))
			if err := res.ConnectDB(); err != nil {
				return cli.NewExitError(err.Error(), -1)
			}

			runs, err := res.MetaDB.GetRuns(c.Args().Get(0))
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}

			if len(runs) == 0 {
				return cli.NewExitError("No runs were found", -1)
			}

			if c.Bool("human-readable") {
				return showRunsHuman(os.Stdout, runs)
			}
			if err := showRuns(os.Stdout, runs); err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}

var runHeader = []string{
	"Run", "Database", "Dataset", "Documents", "Parameter Sets",
	"Started", "Finished", "Leaks", "Version",
}

func runRow(r database.RunInfo) []string {
	return []string{
		r.RunID,
		r.Database,
		r.Dataset,
		i(int64(r.Documents)),
		i(int64(r.ParameterSets)),
		ts(r.Started),
		strconv.FormatBool(r.Finished),
		i(int64(r.Leaks)),
		r.Version,
	}
}

func showRuns(w io.Writer, runs []database.RunInfo) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(runHeader); err != nil {
		return err
	}
	for _, r := range runs {
		if err := csvWriter.Write(runRow(r)); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func showRunsHuman(w io.Writer, runs []database.RunInfo) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(runHeader)
	for _, r := range runs {
		table.Append(runRow(r))
	}
	table.Render()
	return nil
}

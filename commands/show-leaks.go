package commands

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/resources"
	"github.com/activecm/leakhunt/util"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-leaks",
		Usage:     "Print the leak reports stored in a database",
		ArgsUsage: "<database>",
		Flags: []cli.Flag{
			configFlag,
			humanFlag,
			limitFlag,
			noLimitFlag,
			cli.StringFlag{
				Name:  "run, r",
				Usage: "Only print the reports of `RUN_ID`",
			},
			cli.UintFlag{
				Name:  "asn, a",
				Usage: "Only print the reports involving `ASN`",
			},
		},
		Action: func(c *cli.Context) error {
			db := c.Args().Get(0)
			if db == "" {
				return cli.NewExitError("Specify a database", -1)
			}

			res := resources.InitResources(c.String("config"))
			if err := res.ConnectDB(); err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			res.DB.SelectDB(db)

			data, err := leak.Results(res, c.String("run"), uint32(c.Uint("asn")),
				c.Int("limit"), c.Bool("no-limit"))

			if err != nil {
				res.Log.Error(err)
				return cli.NewExitError(err, -1)
			}

			if !(len(data) > 0) {
				return cli.NewExitError("No results were found for "+db, -1)
			}

			if c.Bool("human-readable") {
				err := showLeaksHuman(os.Stdout, data)
				if err != nil {
					return cli.NewExitError(err.Error(), -1)
				}
				return nil
			}
			err = showLeaks(os.Stdout, data)
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}

var leakHeader = []string{
	"Run", "Prefixes Min", "Conflicts Min", "Similarity",
	"Max Peaks", "Percent Std", "ASes", "Leaks", "Dates",
}

func leakRow(d leak.Result) []string {
	return []string{
		d.RunID,
		i(int64(d.Thresholds.PrefixesPeakMinValue)),
		i(int64(d.Thresholds.ConflictsPeakMinValue)),
		f(d.Thresholds.Similarity),
		i(int64(d.Thresholds.MaxNbPeaks)),
		f(d.Thresholds.PercentStd),
		util.JoinUint32(d.ASes, " "),
		util.JoinInts(d.Leaks, " "),
		strings.Join(d.Dates, " "),
	}
}

func showLeaks(w io.Writer, data []leak.Result) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(leakHeader); err != nil {
		return err
	}
	for _, d := range data {
		if err := csvWriter.Write(leakRow(d)); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func showLeaksHuman(w io.Writer, data []leak.Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(leakHeader)
	for _, d := range data {
		table.Append(leakRow(d))
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Reports", strconv.Itoa(len(data)), ""})
	table.Render()
	return nil
}

package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/activecm/leakhunt/parser"
	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/pkg/peaks"
	"github.com/activecm/leakhunt/resources"
	"github.com/activecm/leakhunt/util"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "explain",
		Usage: "Explain why a day of an AS is or is not reported as a leak",
		UsageText: "leakhunt explain [command-options] <dataset> <asn> <index|YYYY-MM-DD>\n\n" +
			"Days are only accepted for datasets carrying a start date.",
		ArgsUsage: "<dataset> <asn> <index|YYYY-MM-DD>",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "params, p",
				Usage: "Explain against `PARAMS` instead of the configured thresholds, as \"pfx cfl max_nb similarity percent_std\"",
			},
		},
		Action: explain,
	}

	bootstrapCommands(command)
}

func explain(c *cli.Context) error {
	if c.NArg() < 3 {
		return cli.NewExitError("Specify a dataset, an AS number and an index or a day", -1)
	}
	dataset := c.Args().Get(0)
	if util.IsDir(dataset) {
		return cli.NewExitError("The dataset must be a file, "+dataset+" is a directory", -1)
	}

	asn, err := strconv.ParseUint(c.Args().Get(1), 10, 32)
	if err != nil {
		return cli.NewExitError("Invalid AS number "+c.Args().Get(1), -1)
	}

	res := resources.InitResources(c.String("config"))

	th := leak.Thresholds(res.Config.S.Detection.Thresholds)
	if c.String("params") != "" {
		th, err = parser.ParseParameters(c.String("params"))
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Error while reading parameters: %s", err.Error()), -1)
		}
	}

	docs, err := parser.ReadDocuments(dataset)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error while reading data: %s", err.Error()), -1)
	}

	doc, ok := leak.FindDocument(docs, uint32(asn))
	if !ok {
		return cli.NewExitError(fmt.Sprintf("AS %d is not in %s", asn, dataset), -1)
	}

	index, err := sampleIndex(doc, c.Args().Get(2))
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	e, err := leak.Explain(doc, th, index)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Could not explain sample %d: %s", index, err.Error()), -1)
	}

	if err := writeExplanation(os.Stdout, uint32(asn), th, e); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	return nil
}

// sampleIndex reads arg as a sample index, or as a day of a dated document
func sampleIndex(doc leak.Document, arg string) (int, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		return index, nil
	}
	if doc.StartDate == "" {
		return 0, fmt.Errorf("%s is not an index and the dataset has no start date", arg)
	}
	return leak.DateIndex(doc.StartDate, arg)
}

func writeExplanation(w io.Writer, asn uint32, th leak.Thresholds, e leak.Explanation) error {
	sample := "index " + strconv.Itoa(e.Index)
	if e.Date != "" {
		sample += " (" + e.Date + ")"
	}
	verdict := "no leak"
	if e.Leak() {
		verdict = "leak"
	}

	if _, err := fmt.Fprintf(w, "AS %d, %s, thresholds %s: %s\n", asn, sample, th.String(), verdict); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  prefixes: %s\n", describeSeries(e.Prefixes, th.PrefixesPeakMinValue, th)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  conflicts: %s\n", describeSeries(e.Conflicts, th.ConflictsPeakMinValue, th))
	return err
}

// describeSeries states the outcome of the check a series stopped at
func describeSeries(e peaks.Explanation, peakMinValue uint32, th leak.Thresholds) string {
	switch e.Cause {
	case peaks.CauseNotLocalMax:
		return fmt.Sprintf("%s, samples %d %d %d", e.Cause, e.Previous, e.Value, e.Next)
	case peaks.CausePeakMinValue:
		return fmt.Sprintf("%s, steps %d and %d must both exceed %d", e.Cause, e.Up, e.Down, peakMinValue)
	case peaks.CauseSimilarity:
		return fmt.Sprintf("%s, %d is below %s (%s of max %d)", e.Cause, e.Value, f(e.Threshold), f(th.Similarity), e.Max)
	case peaks.CauseMaxNbPeaks:
		return fmt.Sprintf("%s, %d peaks at least as high at %s, at most %d allowed",
			e.Cause, len(e.SimilarPeaks), util.JoinInts(e.SimilarPeaks, ","), th.MaxNbPeaks)
	case peaks.CausePercentStd:
		return fmt.Sprintf("%s, std %s drops to %s without peaks at %s, must drop below %s",
			e.Cause, f(e.Std), f(e.SmoothStd), util.JoinInts(e.BigMaxes, ","), f(e.Std*th.PercentStd))
	default:
		return fmt.Sprintf("%s, value %d", e.Cause, e.Value)
	}
}

package commands

import (
	"fmt"
	"os"

	"github.com/activecm/leakhunt/parser"
	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/resources"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "prepare",
		Usage: "Build a dataset from per-AS prefixes and conflicts series",
		UsageText: "leakhunt prepare [command-options]\n\n" +
			"Both files hold one {\"<asn>\": [counts...]} object per line.\n" +
			"ASes sharing the same series are grouped in a single document.",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "prefixes",
				Usage: "Read the prefixes series from `FILE`",
			},
			cli.StringFlag{
				Name:  "conflicts",
				Usage: "Read the conflicts series from `FILE`",
			},
			cli.StringFlag{
				Name:  "output, o",
				Usage: "Write the dataset to `FILE` instead of standard out",
			},
		},
		Action: prepare,
	}

	bootstrapCommands(command)
}

func prepare(c *cli.Context) error {
	if c.String("prefixes") == "" || c.String("conflicts") == "" {
		return cli.NewExitError("Specify both --prefixes and --conflicts", -1)
	}

	res := resources.InitResources(c.String("config"))

	docs, err := parser.Aggregate(c.String("prefixes"), c.String("conflicts"))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error while reading series: %s", err.Error()), -1)
	}

	if err := writeDataset(c.String("output"), docs); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	res.Log.WithFields(log.Fields{
		"prefixes":  c.String("prefixes"),
		"conflicts": c.String("conflicts"),
		"documents": len(docs),
	}).Info("Dataset prepared")
	return nil
}

// writeDataset writes docs to path, or to standard out when path is empty
func writeDataset(path string, docs []leak.Document) error {
	if path == "" {
		return parser.WriteDocuments(os.Stdout, docs)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := parser.WriteDocuments(file, docs); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}
	return nil
}

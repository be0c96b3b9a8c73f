package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/activecm/leakhunt/config"
	"github.com/activecm/leakhunt/database"
	"github.com/activecm/leakhunt/parser"
	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/printing"
	"github.com/activecm/leakhunt/resources"
	"github.com/activecm/leakhunt/util"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "detect",
		Usage: "Detect route leaks in a dataset",
		UsageText: "leakhunt detect [command-options] <dataset>\n\n" +
			"Each line of the dataset holds the prefixes and conflicts series of a group of ASes.\n" +
			"Leaks are printed to standard out, and stored when a database is given.",
		ArgsUsage: "<dataset>",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
			threadsFlag,
			cli.StringFlag{
				Name:  "params, p",
				Usage: "Read threshold sets from `PARAMS_FILE`, one set per line",
			},
			cli.BoolFlag{
				Name:  "flat, f",
				Usage: "Print one line per group of ASes and threshold set",
			},
			cli.BoolFlag{
				Name:  "dates",
				Usage: "Print leaks of dated datasets as days instead of indexes",
			},
			cli.BoolFlag{
				Name:  "progress",
				Usage: "Display a progress bar on standard error",
			},
			cli.BoolFlag{
				Name:  "quiet, q",
				Usage: "Do not print leaks, only store them",
			},
		},
		Action: detect,
	}

	bootstrapCommands(command)
}

func detect(c *cli.Context) error {
	dataset := c.Args().Get(0)
	if dataset == "" {
		return cli.NewExitError("Specify a dataset", -1)
	}
	if util.IsDir(dataset) {
		return cli.NewExitError("The dataset must be a file, "+dataset+" is a directory", -1)
	}

	dbName := c.String("database")
	if c.Bool("quiet") && dbName == "" {
		return cli.NewExitError("--quiet requires a database to store leaks in, specify one with -d", -1)
	}

	res := resources.InitResources(c.String("config"))

	docs, err := parser.ReadDocuments(dataset)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error while reading data: %s", err.Error()), -1)
	}

	params, err := loadParameters(c.String("params"), res.Config)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error while reading parameters: %s", err.Error()), -1)
	}

	var sinks []leak.Sink
	if !c.Bool("quiet") {
		sinks = append(sinks, printing.NewPrinter(os.Stdout, c.Bool("flat"), c.Bool("dates")))
	}

	runID := uuid.New().String()
	var store *leak.RepositorySink
	if dbName != "" {
		if err := res.ConnectDB(); err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		res.DB.SelectDB(dbName)

		repo := leak.NewMongoRepository(res)
		if err := repo.CreateIndexes(); err != nil {
			return cli.NewExitError(fmt.Sprintf("Failed to create leak collection: %s", err.Error()), -1)
		}

		info := database.NewRunInfo(res.Config, dbName, dataset, len(docs), len(params))
		if err := res.MetaDB.AddRun(info); err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		runID = info.RunID

		store = leak.NewRepositorySink(repo, res.Config.S.Detection.BulkSize)
		sinks = append(sinks, store)
	}

	var progress io.Writer
	if c.Bool("progress") {
		progress = os.Stderr
	}

	res.Log.WithFields(log.Fields{
		"run_id":         runID,
		"path":           dataset,
		"documents":      len(docs),
		"parameter_sets": len(params),
	}).Info("Starting leak detection")

	err = leak.Run(docs, params, leak.Options{
		RunID:    runID,
		Threads:  analysisThreads(c.Int("threads"), res.Config),
		Progress: progress,
		Log:      res.Log,
	}, sinks...)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	if store != nil {
		if store.Dropped() > 0 {
			res.Log.WithFields(log.Fields{
				"run_id":  runID,
				"dropped": store.Dropped(),
			}).Error("Leak reports lost to failed inserts")
		}
		if err := res.MetaDB.MarkRunFinished(runID, store.Written()); err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		fmt.Fprintf(os.Stderr, "\t[+] Stored %d leak reports in %s (run %s)\n", store.Written(), dbName, runID)
	}
	return nil
}

// loadParameters reads the threshold sets from path, or falls back on the
// configured default set when no path is given
func loadParameters(path string, conf *config.Config) ([]leak.Thresholds, error) {
	if path == "" {
		return []leak.Thresholds{leak.Thresholds(conf.S.Detection.Thresholds)}, nil
	}
	return parser.ReadParameters(path)
}

// analysisThreads returns the number of analysis threads requested on the
// command line, or the configured amount
func analysisThreads(requested int, conf *config.Config) int {
	if requested > 0 {
		return requested
	}
	if conf.S.Detection.Threads > 0 {
		return conf.S.Detection.Threads
	}
	return 1
}

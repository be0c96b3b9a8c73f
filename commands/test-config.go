package commands

import (
	"fmt"
	"os"

	"github.com/activecm/leakhunt/config"
	"github.com/activecm/leakhunt/resources"

	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	command := cli.Command{
		Flags: []cli.Flag{
			configFlag,
			cli.BoolFlag{
				Name:  "connect",
				Usage: "Also try connecting to MongoDB",
			},
		},
		Name:   "test-config",
		Usage:  "Check the configuration file for validity",
		Action: testConfiguration,
	}

	bootstrapCommands(command)
}

// testConfiguration prints out the result of parsing the config file
func testConfiguration(c *cli.Context) error {
	// First, print out the config as it was parsed
	conf, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Failed to config: %s", err.Error()), -1)
	}

	staticConfig, err := yaml.Marshal(conf.S)
	if err != nil {
		return err
	}

	tableConfig, err := yaml.Marshal(conf.T)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n%s\n", string(staticConfig))
	fmt.Fprintf(os.Stdout, "\n%s\n", string(tableConfig))

	// Then test initializing external resources like db connection and file handles
	res := resources.InitResources(c.String("config"))
	if c.Bool("connect") {
		if err := res.ConnectDB(); err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		fmt.Fprintf(os.Stdout, "Connected to %s\n", conf.S.MongoDB.ConnectionString)
	}

	return nil
}

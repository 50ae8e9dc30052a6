package main

import (
	"os"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/factory"
	"github.com/cloudstrikethunderbeing/bear/governance"
	"github.com/urfave/cli"
)

var log = logger.GetOrCreate("main")

type flags struct {
	configPath  string
	envFile     string
	logLevel    string
	projectPath string
	dryRun      bool
}

func main() {
	var f flags

	app := cli.NewApp()
	app.Name = "bear-proposal"
	app.Usage = "builds the launch proposal from the project document and submits it"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "path to the TOML configuration file",
			Value:       config.DefaultConfigPath,
			Destination: &f.configPath,
		},
		cli.StringFlag{
			Name:        "env-file",
			Usage:       "dotenv file with BEAR_* overrides",
			Value:       ".env",
			Destination: &f.envFile,
		},
		cli.StringFlag{
			Name:        "log-level",
			Usage:       "logger level pattern, e.g. *:DEBUG",
			Value:       "*:INFO",
			Destination: &f.logLevel,
		},
		cli.StringFlag{
			Name:        "project",
			Usage:       "project document the proposal is built from",
			Value:       config.DefaultProjectPath,
			Destination: &f.projectPath,
		},
		cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "print the assembled proposal without submitting it",
			Destination: &f.dryRun,
		},
	}
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(f.logLevel)
	}
	app.Action = func(c *cli.Context) error {
		return submitProposal(f)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error("bear-proposal failed", "err", err.Error())
		os.Exit(1)
	}
}

func submitProposal(f flags) error {
	cfg, err := factory.LoadGeneralConfig(f.configPath, f.envFile)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	var submitter governance.ProposalSubmitter
	if !f.dryRun {
		submitter, err = factory.CreateProposalSubmitter(cfg)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	runner := governance.NewRunner(submitter, cfg.Governance.Endpoint, os.Stdout, os.Stderr, f.dryRun)
	err = runner.Run(f.projectPath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

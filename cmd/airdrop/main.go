package main

import (
	"os"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/cloudstrikethunderbeing/bear/airdrop"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/factory"
	"github.com/cloudstrikethunderbeing/bear/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

var log = logger.GetOrCreate("main")

type flags struct {
	configPath string
	envFile    string
	logLevel   string
}

func main() {
	var f flags

	app := cli.NewApp()
	app.Name = "bear-airdrop"
	app.Usage = "triggers the monthly airdrop and reports treasury and participants"
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
	}
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(f.logLevel)
	}
	app.Action = func(c *cli.Context) error {
		return runAirdrop(f)
	}
	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "serve airdrop status, trigger and metrics over HTTP",
			Action: func(c *cli.Context) error {
				return serve(f)
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error("bear-airdrop failed", "err", err.Error())
		os.Exit(1)
	}
}

func runAirdrop(f flags) error {
	cfg, err := factory.LoadGeneralConfig(f.configPath, f.envFile)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	client, err := factory.CreateAirdropClient(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	err = airdrop.NewRunner(client, os.Stdout, os.Stderr).Run()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func serve(f flags) error {
	cfg, err := factory.LoadGeneralConfig(f.configPath, f.envFile)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	client, err := factory.CreateAirdropClient(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	webServer, err := server.NewWebServer(client, cfg.Airdrop, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	return webServer.Run(cfg.Server.Port)
}

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func overrideConfig(cfg Config, ctx *cli.Context) Config {
	if ctx.Uint64("Seed") != 0 {
		cfg.Seed = ctx.Uint64("Seed")
	}
	if ctx.Int("SortSize") != 0 {
		cfg.SortSize = ctx.Int("SortSize")
	}
	if ctx.IsSet("RangeStart") {
		cfg.RangeStart = ctx.Int("RangeStart")
	}
	if ctx.IsSet("RangeEnd") {
		cfg.RangeEnd = ctx.Int("RangeEnd")
	}
	if ctx.Int("RangeStep") != 0 {
		cfg.RangeStep = ctx.Int("RangeStep")
	}

	return cfg
}

func PrepareConsoleApp() (app *cli.App) {

	prepareCfg := func(ctx *cli.Context) (Config, error) {
		cfg := LoadConfig(true)
		cfg = overrideConfig(cfg, ctx)
		return cfg, cfg.Validate()
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "logging profile: dev or prod",
		},
		&cli.Uint64Flag{
			Name:    "Seed",
			Aliases: []string{"seed"},
			Usage:   "seed for the random sample data (same seed reproduces the same run)",
		},
		&cli.IntFlag{
			Name:    "SortSize",
			Aliases: []string{"n"},
			Usage:   "how many random ints to generate for the sort showcase",
		},
		&cli.IntFlag{
			Name:  "RangeStart",
			Usage: "start of the range showcase sequence (inclusive)",
		},
		&cli.IntFlag{
			Name:  "RangeEnd",
			Usage: "end of the range showcase sequence (exclusive)",
		},
		&cli.IntFlag{
			Name:  "RangeStep",
			Usage: "step of the range showcase sequence (nonzero)",
		},
	}

	app = &cli.App{
		Name: "itersort",
		Commands: []*cli.Command{
			{
				Name:        "demo",
				Flags:       flags,
				Description: "Exercises every iterator kind with sample data and prints the results",
				Action: func(ctx *cli.Context) error {
					cfg, err := prepareCfg(ctx)
					if err != nil {
						return err
					}
					logger, err := newLogger(ctx.String("env"))
					if err != nil {
						return err
					}
					defer logger.Sync()
					return runDemo(cfg, logger)
				},
			},
			{
				Name:        "sort",
				Flags:       flags,
				Description: "Generates random ints, sorts them in place and prints before/after",
				Action: func(ctx *cli.Context) error {
					cfg, err := prepareCfg(ctx)
					if err != nil {
						return err
					}
					logger, err := newLogger(ctx.String("env"))
					if err != nil {
						return err
					}
					defer logger.Sync()
					return runSort(cfg, logger)
				},
			},
			{
				Name:        "gen",
				Flags:       flags,
				Description: "Generates config to stdOut.",
				Action: func(ctx *cli.Context) error {
					cfg := overrideConfig(DefaultCfg, ctx)
					err := cfg.Validate()
					if err != nil {
						return err
					}
					yamlData, err := yaml.Marshal(&cfg)
					if err != nil {
						return err
					}
					fmt.Print(string(yamlData))
					return nil
				},
			},
		},
	}

	return
}

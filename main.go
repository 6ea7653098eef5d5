package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/lexa-index/internal/build"
	"github.com/dtnitsch/lexa-index/internal/history"
	"github.com/dtnitsch/lexa-index/internal/inspect"
	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/db"
	"github.com/dtnitsch/lexa-index/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lexa",
		Usage: "Build LAS/OPM word datasets for the AI vs human text explorer",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Aggregate word count CSVs into JSON datasets",
				Action: build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML build config"},
					&cli.StringFlag{Name: "input-root", Usage: "Root of the <register>/<model>/las_word_<lang>.csv tree", Value: models.DefaultBuildConfig().InputRoot},
					&cli.StringFlag{Name: "observations", Usage: "Combined observation CSV (replaces --input-root)"},
					&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "Directory for dataset files and index.json", Value: models.DefaultBuildConfig().OutputDir},
					&cli.IntFlag{Name: "window", Aliases: []string{"k"}, Usage: "Window size K for all datasets (0 uses each summary's windowk)"},
					&cli.StringFlag{Name: "mode", Usage: "full or compact", Value: "full"},
					&cli.Float64Flag{Name: "min-ai-count-for-impact", Usage: "Minimum AI count before lpr is reported", Value: models.DefaultMinAICount},
					&cli.Float64Flag{Name: "ratio-smooth", Usage: "Additive smoothing for ratio_smoothed", Value: models.DefaultRatioSmooth},
					&cli.IntFlag{Name: "opm-places", Usage: "Decimal places for opm_ai and opm_human", Value: models.DefaultOPMPlaces},
					&cli.IntFlag{Name: "las-places", Usage: "Decimal places for las and lpr", Value: models.DefaultLASPlaces},
					&cli.IntFlag{Name: "ratio-places", Usage: "Decimal places for ratio and ratio_smoothed", Value: models.DefaultRatioPlaces},
					dbFlag(),
					&cli.BoolFlag{Name: "no-ledger", Usage: "Do not record the build"},
				},
			},
			{
				Name:      "inspect",
				Usage:     "Summarize an emitted dataset",
				ArgsUsage: "<file.json | lang/register/model>",
				Action:    inspect.InspectAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Value: models.DefaultBuildConfig().OutputDir},
					&cli.IntFlag{Name: "top", Value: 10, Usage: "Markers to show per side"},
					&cli.StringFlag{Name: "fields", Usage: "Record fields to show (e.g. w,l,a,h,r)"},
					&cli.StringFlag{Name: "pos", Usage: "Only content or function words"},
				},
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML quick reference",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return nil
				},
			},
			{
				Name:      "history",
				Usage:     "List recorded builds",
				ArgsUsage: "[build-id]",
				Action:    history.HistoryAction,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{Name: "limit", Value: 20},
				},
			},
		},
	}
}

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "Build ledger path",
		Value: db.DefaultDBName,
	}
}

package build

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/db"
	"github.com/dtnitsch/lexa-index/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Exit codes of the build command.
const (
	ExitDatasetFailed = 1
	ExitSetup         = 2
)

func BuildAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := configFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitSetup)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid configuration: %v", err), ExitSetup)
	}

	b := &Builder{
		Config:  cfg,
		Logger:  logger,
		Storage: &storage.Storage{},
		Out:     c.App.Writer,
		Diag:    c.App.ErrWriter,
	}

	if !c.Bool("no-ledger") {
		database, err := db.Open(c.String("db"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to open ledger: %v", err), ExitSetup)
		}
		defer database.Close()
		b.Ledger = database
	}

	report, err := b.Run(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), ExitSetup)
	}

	fmt.Fprintf(c.App.Writer, "%d datasets written, %d failed\n", report.OK, report.Failed)
	if report.RunID != "" && !c.Bool("quiet") {
		fmt.Fprintf(c.App.Writer, "Run: %s\n", report.RunID)
	}
	if report.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d datasets failed", report.Failed), ExitDatasetFailed)
	}
	if err := c.Context.Err(); err != nil {
		return cli.Exit(fmt.Sprintf("build interrupted: %v", err), ExitDatasetFailed)
	}
	return nil
}

// configFromFlags loads the optional YAML config and applies explicitly set flags on top.
func configFromFlags(c *cli.Context) (models.BuildConfig, error) {
	cfg := models.DefaultBuildConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadBuildConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("input-root") {
		cfg.InputRoot = c.String("input-root")
	}
	if c.IsSet("observations") {
		cfg.Observations = c.String("observations")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("window") {
		cfg.Window = c.Int("window")
	}
	if c.IsSet("mode") {
		mode, err := models.ParseBuildMode(c.String("mode"))
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if c.IsSet("min-ai-count-for-impact") {
		cfg.MinAICount = c.Float64("min-ai-count-for-impact")
	}
	if c.IsSet("ratio-smooth") {
		cfg.RatioSmooth = c.Float64("ratio-smooth")
	}
	if c.IsSet("opm-places") {
		cfg.OPMPlaces = int32(c.Int("opm-places"))
	}
	if c.IsSet("las-places") {
		cfg.LASPlaces = int32(c.Int("las-places"))
	}
	if c.IsSet("ratio-places") {
		cfg.RatioPlaces = int32(c.Int("ratio-places"))
	}
	return cfg, nil
}

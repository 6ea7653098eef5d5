package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/lexa-index/internal/common"
	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/aggregator"
	"github.com/dtnitsch/lexa-index/pkg/db"
	"github.com/dtnitsch/lexa-index/pkg/ingest"
	"github.com/dtnitsch/lexa-index/pkg/language"
	"github.com/dtnitsch/lexa-index/pkg/manifest"
	"github.com/dtnitsch/lexa-index/pkg/mapreduce"
	"github.com/dtnitsch/lexa-index/pkg/postag"
	"github.com/dtnitsch/lexa-index/pkg/storage"
)

const topKeywordCount = 5

// Builder runs the aggregator over every dataset of an input and writes the results.
type Builder struct {
	Config  models.BuildConfig
	Logger  *slog.Logger
	Storage *storage.Storage
	// Ledger is optional; when nil nothing is recorded.
	Ledger *db.DB
	// Out receives one line per dataset; Diag receives failure diagnostics.
	Out  io.Writer
	Diag io.Writer
}

// Run executes one build. It returns an error only when the build could not
// start; per-dataset failures are reported in the Report.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	cfg := b.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build config: %w", err)
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if b.Storage == nil {
		b.Storage = &storage.Storage{}
	}
	if b.Out == nil {
		b.Out = io.Discard
	}
	if b.Diag == nil {
		b.Diag = io.Discard
	}

	opts := ingest.ReadOptions{Window: cfg.Window, DefaultWindow: cfg.DefaultWindow}
	input := cfg.InputRoot
	var loaded []ingest.Loaded
	var skipped []string
	var err error
	if cfg.Observations != "" {
		input = cfg.Observations
		logger.Info("Reading observation file", "path", input)
		loaded, err = ingest.LoadObservations(input, opts)
	} else {
		logger.Info("Scanning input tree", "root", input)
		loaded, skipped, err = ingest.LoadLayout(input, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", input, err)
	}
	for _, path := range skipped {
		logger.Warn("Word table outside <register>/<model> layout, skipping", "path", path)
	}

	report := &Report{Skipped: skipped}
	var build *db.Build
	if b.Ledger != nil {
		build, err = b.Ledger.StartBuild(input, cfg.OutputDir, cfg.Mode.String(), cfg.Window)
		if err != nil {
			return nil, fmt.Errorf("failed to start ledger entry: %w", err)
		}
		report.RunID = build.RunID
	}

	logger.Info("Building datasets", "count", len(loaded), "mode", cfg.Mode.String(), "output_dir", cfg.OutputDir)
	agg := aggregator.New(cfg, postag.New(cfg.FunctionWords))

	var index []manifest.IndexEntry
	for _, l := range loaded {
		dr, entry := b.buildOne(ctx, logger, agg, l)
		report.Datasets = append(report.Datasets, dr)
		if dr.Error != nil {
			report.Failed++
			fmt.Fprintf(b.Diag, "FAILED %s: %v\n", dr.Key, dr.Error)
		} else {
			report.OK++
			index = append(index, *entry)
			note := ""
			if dr.Unchanged {
				note = ", unchanged"
			}
			fmt.Fprintf(b.Out, "wrote %s (%d records%s)\n", dr.File, dr.Records, note)
		}
		if build != nil {
			if err := b.Ledger.RecordDataset(build.BuildID, outcome(dr)); err != nil {
				logger.Warn("Failed to record dataset in ledger", "dataset", dr.Key.String(), "error", err)
			}
		}
	}

	if err := ctx.Err(); err == nil {
		path, err := manifest.GenerateIndex(ctx, b.Storage, cfg.OutputDir, index)
		if err != nil {
			report.Failed++
			fmt.Fprintf(b.Diag, "FAILED %s: %v\n", manifest.IndexFile, err)
		} else {
			report.IndexPath = path
		}
	}

	if build != nil {
		status := db.StatusSuccess
		if report.Failed > 0 || ctx.Err() != nil {
			status = db.StatusFailed
		}
		if err := b.Ledger.FinishBuild(build.BuildID, status, report.OK, report.Failed); err != nil {
			logger.Warn("Failed to finish ledger entry", "error", err)
		}
	}

	logger.Info("Build finished", "ok", report.OK, "failed", report.Failed)
	return report, nil
}

// buildOne aggregates and writes a single dataset. The index entry is nil on failure.
func (b *Builder) buildOne(ctx context.Context, logger *slog.Logger, agg *aggregator.Aggregator, l ingest.Loaded) (DatasetReport, *manifest.IndexEntry) {
	dr := DatasetReport{Key: l.Key, Status: db.StatusFailed}
	fail := func(err error) (DatasetReport, *manifest.IndexEntry) {
		dr.Error = err
		dr.ErrorKind = Classify(err)
		logger.Error("Dataset failed", "dataset", l.Key.String(), "kind", dr.ErrorKind, "error", err)
		return dr, nil
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if l.Err != nil {
		return fail(l.Err)
	}

	lang, err := language.Resolve(l.Key.Language)
	if err != nil {
		return fail(&ingest.InputError{Kind: ingest.ErrMalformedInput, File: l.Source, Column: "language", Err: err})
	}

	ds := l.Dataset
	if ds.AITokens == 0 || ds.HumanTokens == 0 {
		logger.Warn("Dataset has no token total, OPM will be zero", "dataset", l.Key.String(),
			"ai_tokens", ds.AITokens, "human_tokens", ds.HumanTokens)
	}

	res, err := agg.Aggregate(ds)
	if err != nil {
		return fail(err)
	}
	if res.ParityMismatches > 0 {
		logger.Warn("Computed LAS differs from reference", "dataset", l.Key.String(),
			"mismatches", res.ParityMismatches, "checked", res.ParityChecked,
			"max_delta", res.MaxParityDelta, "word", res.WorstParityWord)
	}

	var previous string
	var havePrevious bool
	if b.Ledger != nil {
		previous, havePrevious, err = b.Ledger.LastContentHash(l.Key.Language, l.Key.Register, l.Key.Model)
		if err != nil {
			logger.Warn("Failed to read previous hash", "dataset", l.Key.String(), "error", err)
		}
	}

	path, data, err := manifest.WriteDataset(ctx, b.Storage, b.Config.OutputDir, l.Key, res.Records)
	if err != nil {
		return fail(err)
	}

	hash := common.ContentHash(data)
	dr.Status = db.StatusSuccess
	dr.File = l.Key.FileName()
	dr.Records = len(res.Records)
	dr.UndefinedRatios = res.UndefinedRatios
	dr.ParityChecked = res.ParityChecked
	dr.ParityMismatches = res.ParityMismatches
	dr.Unchanged = havePrevious && previous == hash
	dr.TopKeywords = mapreduce.TopKeywords(res.Records, topKeywordCount)
	dr.contentHash = hash

	logger.Info("Dataset written", "dataset", l.Key.String(), "path", path, "records", dr.Records,
		"undefined_ratios", dr.UndefinedRatios, "compact_dropped", res.CompactDropped,
		"rows_dropped", ds.RowsDropped, "top", dr.TopKeywords)

	entry := manifest.NewIndexEntry(ds, lang.Name, dr.Records, b.Config)
	return dr, &entry
}

func outcome(dr DatasetReport) db.DatasetOutcome {
	o := db.DatasetOutcome{
		Lang:             dr.Key.Language,
		Register:         dr.Key.Register,
		Model:            dr.Key.Model,
		File:             dr.File,
		Status:           dr.Status,
		Records:          dr.Records,
		UndefinedRatios:  dr.UndefinedRatios,
		ParityMismatches: dr.ParityMismatches,
		ContentHash:      dr.contentHash,
		ErrorKind:        string(dr.ErrorKind),
	}
	if dr.Error != nil {
		o.Error = dr.Error.Error()
	}
	return o
}

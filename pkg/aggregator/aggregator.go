// Package aggregator turns paired word counts into ranked dataset records.
package aggregator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/analytics"
	"github.com/dtnitsch/lexa-index/pkg/decimal"
	"github.com/dtnitsch/lexa-index/pkg/mapreduce"
	"github.com/dtnitsch/lexa-index/pkg/postag"
)

// Aggregator computes records for datasets. It holds no per-dataset state.
type Aggregator struct {
	tagger    *postag.Tagger
	analytics *analytics.Analytics
	rounder   *decimal.Rounder

	mode            models.BuildMode
	opmPlaces       int32
	lasPlaces       int32
	ratioPlaces     int32
	parityTolerance float64
}

// New builds an Aggregator from a validated config and a tagger.
func New(cfg models.BuildConfig, tagger *postag.Tagger) *Aggregator {
	return &Aggregator{
		tagger: tagger,
		analytics: &analytics.Analytics{
			RatioSmooth: cfg.RatioSmooth,
			MinAICount:  cfg.MinAICount,
		},
		rounder:         decimal.NewRounder(),
		mode:            cfg.Mode,
		opmPlaces:       cfg.OPMPlaces,
		lasPlaces:       cfg.LASPlaces,
		ratioPlaces:     cfg.RatioPlaces,
		parityTolerance: cfg.ParityTolerance,
	}
}

// Result is the output of aggregating one dataset.
type Result struct {
	Key     models.DatasetKey
	Records []models.Record

	// CompactDropped counts rows removed by compact mode.
	CompactDropped  int
	UndefinedRatios int

	// Parity against reference LAS values shipped with the input.
	ParityChecked    int
	ParityMismatches int
	MaxParityDelta   float64
	WorstParityWord  string
}

// Aggregate computes one record per entry, ordered by descending |LAS|
// with ties broken by word. Each record carries its LAS rank (its position)
// and its LPR rank.
func (a *Aggregator) Aggregate(ds models.Dataset) (Result, error) {
	res := Result{Key: ds.Key}
	ranked := make([]mapreduce.Ranked, 0, len(ds.Entries))

	for _, e := range ds.Entries {
		if a.mode == models.BuildModeCompact && e.AICount == 0 {
			res.CompactDropped++
			continue
		}

		opmAI := analytics.OPM(e.AICount, ds.AITokens)
		opmHuman := analytics.OPM(e.HumanCount, ds.HumanTokens)
		las := analytics.LAS(e.AICount, ds.AITokens, e.HumanCount, ds.HumanTokens, ds.Window)

		if e.ReferenceLAS != nil {
			res.ParityChecked++
			delta := math.Abs(las - *e.ReferenceLAS)
			if delta > a.parityTolerance {
				res.ParityMismatches++
			}
			if delta > res.MaxParityDelta {
				res.MaxParityDelta = delta
				res.WorstParityWord = e.Word
			}
		}

		rec := models.Record{
			Word:     e.Word,
			UPOS:     e.UPOS,
			POSClass: string(a.tagger.Classify(ds.Key.Language, e.Word, e.UPOS)),
		}

		var err error
		if rec.OPMAI, err = a.rounder.Number(opmAI, a.opmPlaces); err != nil {
			return res, a.wrap(ds, e, "opm_ai", err)
		}
		if rec.OPMHuman, err = a.rounder.Number(opmHuman, a.opmPlaces); err != nil {
			return res, a.wrap(ds, e, "opm_human", err)
		}
		// A word seen on only one side never reads as neutral.
		lasText, err := a.rounder.RoundNonZero(las, a.lasPlaces)
		if err != nil {
			return res, a.wrap(ds, e, "las", err)
		}
		rec.LAS = json.Number(lasText)
		// The ratio is undefined exactly when the written human OPM is zero,
		// which includes human OPMs too small to survive rounding.
		humanWritten, err := a.rounder.Float(opmHuman, a.opmPlaces)
		if err != nil {
			return res, a.wrap(ds, e, "opm_human", err)
		}
		if ratio, ok := analytics.Ratio(opmAI, opmHuman); ok && humanWritten != 0 {
			v, err := a.rounder.Number(ratio, a.ratioPlaces)
			if err != nil {
				return res, a.wrap(ds, e, "ratio", err)
			}
			rec.Ratio = models.DefinedRatio(v)
		} else {
			res.UndefinedRatios++
		}
		if rec.RatioSmoothed, err = a.rounder.Number(a.analytics.SmoothedRatio(e.AICount, e.HumanCount), a.ratioPlaces); err != nil {
			return res, a.wrap(ds, e, "ratio_smoothed", err)
		}
		if rec.LPR, err = a.rounder.Number(a.analytics.LPR(e.AICount, e.HumanCount), a.lasPlaces); err != nil {
			return res, a.wrap(ds, e, "lpr", err)
		}

		// Order and rank on the values that are written, so ties in the file are ties here.
		item := mapreduce.Ranked{Record: rec}
		if item.LAS, err = strconv.ParseFloat(lasText, 64); err != nil {
			return res, a.wrap(ds, e, "las", err)
		}
		if item.LPR, err = rec.LPR.Float64(); err != nil {
			return res, a.wrap(ds, e, "lpr", err)
		}
		ranked = append(ranked, item)
	}

	mapreduce.SortByLAS(ranked)
	mapreduce.AssignRanks(ranked)
	res.Records = mapreduce.Records(ranked)
	return res, nil
}

func (a *Aggregator) wrap(ds models.Dataset, e models.Entry, field string, err error) error {
	return fmt.Errorf("dataset %s word %q (row %d) field %s: %w", ds.Key, e.Word, e.Row, field, err)
}

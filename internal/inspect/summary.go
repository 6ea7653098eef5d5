package inspect

import (
	"fmt"

	"github.com/dtnitsch/lexa-index/internal/common"
	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/manifest"
	"github.com/dtnitsch/lexa-index/pkg/mapreduce"
	"github.com/dtnitsch/lexa-index/pkg/postag"
)

// Summary is the YAML view of one emitted dataset.
type Summary struct {
	File            string                   `yaml:"file"`
	SizeBytes       int64                    `yaml:"size_bytes"`
	Dataset         *manifest.IndexEntry     `yaml:"dataset,omitempty"`
	Records         int                      `yaml:"records"`
	ContentWords    int                      `yaml:"content_words"`
	FunctionWords   int                      `yaml:"function_words"`
	UndefinedRatios int                      `yaml:"undefined_ratios"`
	AILeaning       int                      `yaml:"ai_leaning"`
	HumanLeaning    int                      `yaml:"human_leaning"`
	TopKeywords     []string                 `yaml:"top_keywords"`
	AIMarkers       []map[string]interface{} `yaml:"ai_markers,omitempty"`
	HumanMarkers    []map[string]interface{} `yaml:"human_markers,omitempty"`
}

// Options select what Summarize reports.
type Options struct {
	Top    int
	Fields string
	// POSClass keeps only records of one class when set.
	POSClass string
}

// Summarize counts a dataset's records and picks the strongest markers on each side.
// Records are expected in file order, which is already ranked by |LAS|.
func Summarize(records []models.Record, opts Options) (Summary, error) {
	var s Summary
	var kept []models.Record
	for _, r := range records {
		if opts.POSClass != "" && r.POSClass != opts.POSClass {
			continue
		}
		kept = append(kept, r)

		switch r.POSClass {
		case string(postag.Function):
			s.FunctionWords++
		default:
			s.ContentWords++
		}
		if !r.Ratio.Defined {
			s.UndefinedRatios++
		}

		las, err := r.LAS.Float64()
		if err != nil {
			return s, fmt.Errorf("record %q has invalid las %q: %w", r.Word, r.LAS, err)
		}
		switch {
		case las > 0:
			s.AILeaning++
			if len(s.AIMarkers) < opts.Top {
				s.AIMarkers = append(s.AIMarkers, common.FilterFields(r, opts.Fields))
			}
		case las < 0:
			s.HumanLeaning++
			if len(s.HumanMarkers) < opts.Top {
				s.HumanMarkers = append(s.HumanMarkers, common.FilterFields(r, opts.Fields))
			}
		}
	}
	s.Records = len(kept)
	s.TopKeywords = mapreduce.TopKeywords(kept, opts.Top)
	return s, nil
}

// Package ingest reads raw corpus counts into datasets.
//
// Two input shapes are supported: a layout tree of per-language word tables
// (<root>/<register>/<model>/las_word_<lang>.csv next to summary_<lang>.json)
// and a single long-format observation file. Both are validated against an
// explicit Schema; every rejection names the file, row and column.
package ingest

import (
	"github.com/dtnitsch/lexa-index/models"
)

// ReadOptions controls how window sizes are resolved.
type ReadOptions struct {
	// Window, when > 0, overrides the window of every dataset.
	Window int
	// DefaultWindow is used when neither Window nor the summary gives one.
	DefaultWindow int
}

func (o ReadOptions) defaultWindow() int {
	if o.DefaultWindow > 0 {
		return o.DefaultWindow
	}
	return models.DefaultWindow
}

// Loaded is the outcome of reading one dataset. Err is set when the dataset
// could not be read; other datasets from the same input are unaffected.
type Loaded struct {
	Key     models.DatasetKey
	Source  string
	Dataset models.Dataset
	Err     error
}

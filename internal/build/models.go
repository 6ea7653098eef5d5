package build

import (
	"github.com/dtnitsch/lexa-index/models"
)

// DatasetReport is the outcome of one dataset in a build.
type DatasetReport struct {
	Key              models.DatasetKey `json:"key"`
	File             string            `json:"file,omitempty"`
	Status           string            `json:"status"`
	Records          int               `json:"records"`
	UndefinedRatios  int               `json:"undefined_ratios,omitempty"`
	ParityChecked    int               `json:"parity_checked,omitempty"`
	ParityMismatches int               `json:"parity_mismatches,omitempty"`
	Unchanged        bool              `json:"unchanged,omitempty"`
	ErrorKind        ErrorKind         `json:"error_kind,omitempty"`
	Error            error             `json:"-"`
	TopKeywords      []string          `json:"top_keywords,omitempty"`

	contentHash string
}

// Report summarises a whole build.
type Report struct {
	RunID     string          `json:"run_id,omitempty"`
	Datasets  []DatasetReport `json:"datasets"`
	OK        int             `json:"ok"`
	Failed    int             `json:"failed"`
	IndexPath string          `json:"index_path,omitempty"`
	Skipped   []string        `json:"skipped,omitempty"`
}

package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

// Summary is the subset of summary_<lang>.json the builder reads.
type Summary struct {
	Params struct {
		// WindowK is decoded as a number so writers that emit 40.0 still load.
		WindowK *json.Number `json:"windowk"`
	} `json:"params"`
	PairingQC struct {
		ModelLines int `json:"model_lines"`
	} `json:"pairing_qc"`
	QC struct {
		NPairs int `json:"n_pairs"`
	} `json:"qc"`
	// Tokens, when present, gives explicit corpus sizes per source.
	Tokens *struct {
		Model float64 `json:"model"`
		Human float64 `json:"human"`
	} `json:"tokens"`
}

// Pairs returns the number of paired lines, preferring pairing_qc.
func (s Summary) Pairs() int {
	if s.PairingQC.ModelLines > 0 {
		return s.PairingQC.ModelLines
	}
	return s.QC.NPairs
}

// Window returns the summary's window, or def when absent or unusable.
func (s Summary) Window(def int) int {
	if k, err := s.windowK(); err == nil && k > 0 {
		return k
	}
	return def
}

// windowK returns 0 when the window is absent, and an error unless it is a
// positive whole number.
func (s Summary) windowK() (int, error) {
	if s.Params.WindowK == nil {
		return 0, nil
	}
	f, err := s.Params.WindowK.Float64()
	if err != nil {
		return 0, fmt.Errorf("window is not a number: %w", err)
	}
	if f != math.Trunc(f) || f <= 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("window must be a whole number > 0, got %s", *s.Params.WindowK)
	}
	return int(f), nil
}

// TokenTotals returns AI and human corpus sizes. Without explicit totals the
// corpora are paired line by line, so both sides are pairs × window tokens.
func (s Summary) TokenTotals(window int) (ai, human float64) {
	if s.Tokens != nil {
		return s.Tokens.Model, s.Tokens.Human
	}
	t := float64(s.Pairs()) * float64(window)
	return t, t
}

// ReadSummary loads and checks a summary file.
func ReadSummary(path string) (Summary, error) {
	var s Summary

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, missing(path, errors.New("summary file not found"))
	}
	if err != nil {
		return s, fmt.Errorf("failed to read summary %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, malformed(path, 0, "", fmt.Errorf("invalid summary JSON: %w", err))
	}
	if _, err := s.windowK(); err != nil {
		return s, malformed(path, 0, "params.windowk", err)
	}
	if s.PairingQC.ModelLines < 0 || s.QC.NPairs < 0 {
		return s, malformed(path, 0, "pairing_qc", errors.New("pair counts must be >= 0"))
	}
	if s.Tokens != nil && (s.Tokens.Model < 0 || s.Tokens.Human < 0) {
		return s, malformed(path, 0, "tokens", errors.New("token totals must be >= 0"))
	}
	return s, nil
}

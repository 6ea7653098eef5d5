package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/storage"
)

// Encode writes v as compact JSON without HTML escaping, so word forms such
// as "&" stay readable in the emitted files.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NewIndexEntry describes a dataset that was written with n records under cfg.
func NewIndexEntry(ds models.Dataset, languageName string, n int, cfg models.BuildConfig) IndexEntry {
	return IndexEntry{
		Lang:        ds.Key.Language,
		Language:    languageName,
		Register:    ds.Key.Register,
		Model:       ds.Key.Model,
		File:        ds.Key.FileName(),
		Records:     n,
		Window:      ds.Window,
		AITokens:    ds.AITokens,
		HumanTokens: ds.HumanTokens,
		Pairs:       ds.Pairs,
		RowsRead:    ds.RowsRead,
		RowsDropped: ds.RowsDropped,
		Mode:        cfg.Mode.String(),
		MinAICount:  cfg.MinAICount,
		RatioSmooth: cfg.RatioSmooth,
	}
}

// WriteDataset encodes records and stores them as the dataset's file in outputDir.
// It returns the path written and the encoded bytes.
func WriteDataset(ctx context.Context, s *storage.Storage, outputDir string, key models.DatasetKey, records []models.Record) (string, []byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	data, err := Encode(records)
	if err != nil {
		return "", nil, fmt.Errorf("error marshalling dataset %s: %w", key, err)
	}

	path := filepath.Join(outputDir, key.FileName())
	if err := s.SaveFile(ctx, path, data); err != nil {
		return "", nil, fmt.Errorf("error saving dataset %s: %w", key, err)
	}
	return path, data, nil
}

// GenerateIndex writes index.json listing entries ordered by language,
// register and model. Returns the path to the generated file.
func GenerateIndex(ctx context.Context, s *storage.Storage, outputDir string, entries []IndexEntry) (string, error) {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		ki := models.DatasetKey{Language: sorted[i].Lang, Register: sorted[i].Register, Model: sorted[i].Model}
		kj := models.DatasetKey{Language: sorted[j].Lang, Register: sorted[j].Register, Model: sorted[j].Model}
		return ki.Less(kj)
	})

	data, err := Encode(sorted)
	if err != nil {
		return "", fmt.Errorf("error marshalling index: %w", err)
	}

	path := filepath.Join(outputDir, IndexFile)
	if err := s.SaveFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("error saving index: %w", err)
	}
	return path, nil
}

// ReadIndex loads an index.json written by GenerateIndex.
func ReadIndex(s *storage.Storage, outputDir string) ([]IndexEntry, error) {
	data, err := s.ReadFile(filepath.Join(outputDir, IndexFile))
	if err != nil {
		return nil, fmt.Errorf("error reading index: %w", err)
	}
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing index: %w", err)
	}
	return entries, nil
}

// ReadDataset loads the records of an emitted dataset file.
func ReadDataset(s *storage.Storage, path string) ([]models.Record, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing dataset %s: %w", path, err)
	}
	return records, nil
}

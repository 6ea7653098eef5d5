package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Build statuses.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Build is one recorded run of the build command.
type Build struct {
	BuildID        int64      `yaml:"build_id"`
	RunID          string     `yaml:"run_id"`
	StartedAt      time.Time  `yaml:"started_at"`
	FinishedAt     *time.Time `yaml:"finished_at,omitempty"`
	Input          string     `yaml:"input"`
	OutputDir      string     `yaml:"output_dir"`
	Mode           string     `yaml:"mode"`
	Window         int        `yaml:"window,omitempty"`
	Status         string     `yaml:"status"`
	DatasetsOK     int        `yaml:"datasets_ok"`
	DatasetsFailed int        `yaml:"datasets_failed"`
}

// DatasetOutcome is the ledger row for one dataset of a build.
type DatasetOutcome struct {
	Lang             string `yaml:"lang"`
	Register         string `yaml:"register"`
	Model            string `yaml:"model"`
	File             string `yaml:"file,omitempty"`
	Status           string `yaml:"status"`
	Records          int    `yaml:"records"`
	UndefinedRatios  int    `yaml:"undefined_ratios,omitempty"`
	ParityMismatches int    `yaml:"parity_mismatches,omitempty"`
	ContentHash      string `yaml:"content_hash,omitempty"`
	ErrorKind        string `yaml:"error_kind,omitempty"`
	Error            string `yaml:"error,omitempty"`
}

// StartBuild records a new running build and returns it with its ids.
func (db *DB) StartBuild(input, outputDir, mode string, window int) (*Build, error) {
	b := &Build{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Input:     input,
		OutputDir: outputDir,
		Mode:      mode,
		Window:    window,
		Status:    StatusRunning,
	}

	res, err := db.Exec(`
		INSERT INTO builds (run_id, started_at, input, output_dir, mode, window_size, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.RunID, b.StartedAt, b.Input, b.OutputDir, b.Mode, b.Window, b.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to insert build: %w", err)
	}

	b.BuildID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get build ID: %w", err)
	}
	return b, nil
}

// RecordDataset stores the outcome of one dataset.
func (db *DB) RecordDataset(buildID int64, o DatasetOutcome) error {
	_, err := db.Exec(`
		INSERT INTO build_datasets (build_id, lang, register, model, file, status, records,
			undefined_ratios, parity_mismatches, content_hash, error_kind, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, buildID, o.Lang, o.Register, o.Model, nullString(o.File), o.Status, o.Records,
		o.UndefinedRatios, o.ParityMismatches, nullString(o.ContentHash),
		nullString(o.ErrorKind), nullString(o.Error))
	if err != nil {
		return fmt.Errorf("failed to record dataset %s/%s/%s: %w", o.Lang, o.Register, o.Model, err)
	}
	return nil
}

// FinishBuild marks a build as done and stores its counts.
func (db *DB) FinishBuild(buildID int64, status string, ok, failed int) error {
	res, err := db.Exec(`
		UPDATE builds
		SET finished_at = ?, status = ?, datasets_ok = ?, datasets_failed = ?
		WHERE build_id = ?
	`, time.Now().UTC(), status, ok, failed, buildID)
	if err != nil {
		return fmt.Errorf("failed to finish build: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish build: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("build %d not found", buildID)
	}
	return nil
}

// ListBuilds returns the most recent builds, newest first.
func (db *DB) ListBuilds(limit int) ([]Build, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT build_id, run_id, started_at, finished_at, input, output_dir, mode,
			window_size, status, datasets_ok, datasets_failed
		FROM builds
		ORDER BY build_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		var finished sql.NullTime
		if err := rows.Scan(&b.BuildID, &b.RunID, &b.StartedAt, &finished, &b.Input, &b.OutputDir,
			&b.Mode, &b.Window, &b.Status, &b.DatasetsOK, &b.DatasetsFailed); err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			b.FinishedAt = &t
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// GetBuildDatasets returns the dataset outcomes of a build in insertion order.
func (db *DB) GetBuildDatasets(buildID int64) ([]DatasetOutcome, error) {
	rows, err := db.Query(`
		SELECT lang, register, model, file, status, records, undefined_ratios,
			parity_mismatches, content_hash, error_kind, error
		FROM build_datasets
		WHERE build_id = ?
		ORDER BY id
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get build datasets: %w", err)
	}
	defer rows.Close()

	var outcomes []DatasetOutcome
	for rows.Next() {
		var o DatasetOutcome
		var file, hash, kind, msg sql.NullString
		if err := rows.Scan(&o.Lang, &o.Register, &o.Model, &file, &o.Status, &o.Records,
			&o.UndefinedRatios, &o.ParityMismatches, &hash, &kind, &msg); err != nil {
			return nil, fmt.Errorf("failed to scan dataset outcome: %w", err)
		}
		o.File, o.ContentHash, o.ErrorKind, o.Error = file.String, hash.String, kind.String, msg.String
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// LastContentHash returns the hash of the most recent successful write of a dataset.
func (db *DB) LastContentHash(lang, register, model string) (string, bool, error) {
	var hash sql.NullString
	err := db.QueryRow(`
		SELECT content_hash
		FROM build_datasets
		WHERE lang = ? AND register = ? AND model = ? AND status = ?
		ORDER BY id DESC
		LIMIT 1
	`, lang, register, model, StatusSuccess).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get last content hash: %w", err)
	}
	return hash.String, hash.Valid, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// GetBuild returns one build by id.
func (db *DB) GetBuild(buildID int64) (*Build, error) {
	var b Build
	var finished sql.NullTime
	err := db.QueryRow(`
		SELECT build_id, run_id, started_at, finished_at, input, output_dir, mode,
			window_size, status, datasets_ok, datasets_failed
		FROM builds
		WHERE build_id = ?
	`, buildID).Scan(&b.BuildID, &b.RunID, &b.StartedAt, &finished, &b.Input, &b.OutputDir,
		&b.Mode, &b.Window, &b.Status, &b.DatasetsOK, &b.DatasetsFailed)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("build %d not found", buildID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	if finished.Valid {
		t := finished.Time
		b.FinishedAt = &t
	}
	return &b, nil
}

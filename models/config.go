// Package models defines data structures for configuration, inputs and emitted datasets.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWindow          = 40
	DefaultMinAICount      = 20
	DefaultRatioSmooth     = 0.5
	DefaultOPMPlaces       = 2
	DefaultLASPlaces       = 4
	DefaultRatioPlaces     = 4
	DefaultParityTolerance = 0.0005
)

// BuildConfig holds everything the aggregator needs for one build.
// Values come from an optional YAML file, then CLI flags override them.
type BuildConfig struct {
	InputRoot    string `yaml:"input_root"`
	Observations string `yaml:"observations"`
	OutputDir    string `yaml:"output_dir"`

	// Window overrides the per-dataset window from summary files when > 0.
	Window        int `yaml:"window"`
	DefaultWindow int `yaml:"default_window"`

	MinAICount      float64   `yaml:"min_ai_count_for_impact"`
	RatioSmooth     float64   `yaml:"ratio_smooth"`
	Mode            BuildMode `yaml:"mode"`
	// Decimal places written for opm_*, for las and lpr, and for ratio and ratio_smoothed.
	OPMPlaces       int32     `yaml:"opm_places"`
	LASPlaces       int32     `yaml:"las_places"`
	RatioPlaces     int32     `yaml:"ratio_places"`
	ParityTolerance float64   `yaml:"parity_tolerance"`

	// FunctionWords extends the built-in function-word lexicon, keyed by language code.
	FunctionWords map[string][]string `yaml:"function_words"`
}

// DefaultBuildConfig returns the configuration used when no file is given.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		InputRoot:       "csv_files",
		OutputDir:       "data",
		DefaultWindow:   DefaultWindow,
		MinAICount:      DefaultMinAICount,
		RatioSmooth:     DefaultRatioSmooth,
		Mode:            BuildModeFull,
		OPMPlaces:       DefaultOPMPlaces,
		LASPlaces:       DefaultLASPlaces,
		RatioPlaces:     DefaultRatioPlaces,
		ParityTolerance: DefaultParityTolerance,
	}
}

// LoadBuildConfig reads a YAML config on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadBuildConfig(path string) (BuildConfig, error) {
	cfg := DefaultBuildConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the numeric knobs.
func (c BuildConfig) Validate() error {
	if c.Window < 0 {
		return fmt.Errorf("window must be >= 0, got %d", c.Window)
	}
	if c.DefaultWindow <= 0 {
		return fmt.Errorf("default_window must be > 0, got %d", c.DefaultWindow)
	}
	if c.MinAICount < 0 {
		return fmt.Errorf("min_ai_count_for_impact must be >= 0, got %g", c.MinAICount)
	}
	if c.RatioSmooth <= 0 {
		return fmt.Errorf("ratio_smooth must be > 0, got %g", c.RatioSmooth)
	}
	if c.OPMPlaces < 0 || c.LASPlaces < 0 || c.RatioPlaces < 0 {
		return fmt.Errorf("decimal places must be >= 0")
	}
	if c.ParityTolerance < 0 {
		return fmt.Errorf("parity_tolerance must be >= 0, got %g", c.ParityTolerance)
	}
	if c.InputRoot == "" && c.Observations == "" {
		return fmt.Errorf("one of input_root or observations is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}

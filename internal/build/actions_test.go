package build

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/manifest"
	"github.com/dtnitsch/lexa-index/pkg/storage"
)

func newApp(out, errOut *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:           "lexa",
		Writer:         out,
		ErrWriter:      errOut,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags:          []cli.Flag{&cli.BoolFlag{Name: "quiet"}},
		Commands: []*cli.Command{{
			Name:   "build",
			Action: BuildAction,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "config"},
				&cli.StringFlag{Name: "input-root", Value: "csv_files"},
				&cli.StringFlag{Name: "observations"},
				&cli.StringFlag{Name: "output-dir", Value: "data"},
				&cli.IntFlag{Name: "window"},
				&cli.StringFlag{Name: "mode", Value: "full"},
				&cli.Float64Flag{Name: "min-ai-count-for-impact", Value: models.DefaultMinAICount},
				&cli.Float64Flag{Name: "ratio-smooth", Value: models.DefaultRatioSmooth},
				&cli.IntFlag{Name: "opm-places", Value: models.DefaultOPMPlaces},
				&cli.IntFlag{Name: "las-places", Value: models.DefaultLASPlaces},
				&cli.IntFlag{Name: "ratio-places", Value: models.DefaultRatioPlaces},
				&cli.StringFlag{Name: "db"},
				&cli.BoolFlag{Name: "no-ledger"},
			},
		}},
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "error %v is not an exit coder", err)
	return coder.ExitCode()
}

func TestBuildActionSuccess(t *testing.T) {
	outDir := t.TempDir()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run([]string{"lexa", "--quiet", "build",
		"--input-root", filepath.Join("testdata", "layout"), "--output-dir", outDir, "--no-ledger"})
	assert.Equal(t, 0, exitCode(t, err))
	assert.Contains(t, out.String(), "2 datasets written, 0 failed")
	assert.FileExists(t, filepath.Join(outDir, "index.json"))
}

func TestBuildActionRecordsLedger(t *testing.T) {
	outDir := t.TempDir()
	ledger := filepath.Join(t.TempDir(), "builds.db")
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run([]string{"lexa", "--quiet", "build",
		"--input-root", filepath.Join("testdata", "layout"), "--output-dir", outDir, "--db", ledger})
	assert.Equal(t, 0, exitCode(t, err))
	assert.FileExists(t, ledger)
}

func TestBuildActionDatasetFailure(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "news", "gpt-4")
	writeFile(t, filepath.Join(dir, "las_word_en.csv"), "form,c_M,c_H\nrealm,-1,2\n")
	writeFile(t, filepath.Join(dir, "summary_en.json"), `{"params":{"windowk":40},"qc":{"n_pairs":10}}`)

	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run([]string{"lexa", "--quiet", "build",
		"--input-root", root, "--output-dir", t.TempDir(), "--no-ledger"})
	assert.Equal(t, ExitDatasetFailed, exitCode(t, err))
	assert.Contains(t, errOut.String(), "FAILED en/news/gpt-4")
}

func TestBuildActionSetupErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad mode", []string{"--mode", "tiny"}},
		{"bad smoothing", []string{"--ratio-smooth", "0"}},
		{"negative window", []string{"--window", "-3"}},
		{"negative places", []string{"--las-places", "-1"}},
		{"missing config", []string{"--config", "no-such-config.yaml"}},
		{"missing input", []string{"--input-root", "no-such-dir"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			args := append([]string{"lexa", "--quiet", "build", "--output-dir", t.TempDir(), "--no-ledger"}, tt.args...)
			err := newApp(&out, &errOut).Run(args)
			assert.Equal(t, ExitSetup, exitCode(t, err))
		})
	}
}

func TestBuildActionConfigFile(t *testing.T) {
	outDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "lexa.yaml")
	cfg := "input_root: " + filepath.Join("testdata", "layout") + "\n" +
		"output_dir: " + filepath.Join(t.TempDir(), "ignored") + "\n" +
		"mode: compact\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run([]string{"lexa", "--quiet", "build",
		"--config", cfgPath, "--output-dir", outDir, "--no-ledger"})
	assert.Equal(t, 0, exitCode(t, err))
	assert.Contains(t, out.String(), "en_news_gpt-4o.json (4 records)")
	assert.FileExists(t, filepath.Join(outDir, "en_news_gpt-4o.json"))
}

func TestBuildActionPlacesFlags(t *testing.T) {
	outDir := t.TempDir()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run([]string{"lexa", "--quiet", "build",
		"--input-root", filepath.Join("testdata", "layout"), "--output-dir", outDir, "--no-ledger",
		"--las-places", "2", "--ratio-places", "2", "--opm-places", "0"})
	require.Equal(t, 0, exitCode(t, err))

	records, err := manifest.ReadDataset(&storage.Storage{}, filepath.Join(outDir, "en_news_gpt-4o.json"))
	require.NoError(t, err)
	var the models.Record
	for _, r := range records {
		if r.Word == "the" {
			the = r
		}
	}
	assert.Equal(t, "-0.01", the.LAS.String())
	assert.Equal(t, "0.95", the.Ratio.String())
	assert.Equal(t, "0.95", the.RatioSmoothed.String())
	assert.Equal(t, "50000", the.OPMAI.String())
}

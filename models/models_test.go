package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioJSON(t *testing.T) {
	rec := Record{Word: "delve", Ratio: DefinedRatio("5")}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ratio":5`)

	rec.Ratio = Ratio{}
	data, err = json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ratio":"undefined"`)

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.False(t, back.Ratio.Defined)

	require.NoError(t, json.Unmarshal([]byte(`{"ratio": 2.5}`), &back))
	assert.True(t, back.Ratio.Defined)
	assert.Equal(t, "2.5", back.Ratio.String())

	assert.Error(t, json.Unmarshal([]byte(`{"ratio": "infinite"}`), &back))
}

func TestParseBuildMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BuildMode
		wantErr bool
	}{
		{"", BuildModeFull, false},
		{"full", BuildModeFull, false},
		{" Compact ", BuildModeCompact, false},
		{"tiny", BuildModeFull, true},
	}
	for _, tt := range tests {
		got, err := ParseBuildMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoadBuildConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexa.yaml")
	content := `input_root: corpora
output_dir: site/data
mode: compact
window: 100
ratio_smooth: 1
function_words:
  en: [gonna]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadBuildConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "corpora", cfg.InputRoot)
	assert.Equal(t, "site/data", cfg.OutputDir)
	assert.Equal(t, BuildModeCompact, cfg.Mode)
	assert.Equal(t, 100, cfg.Window)
	assert.Equal(t, 1.0, cfg.RatioSmooth)
	assert.Equal(t, float64(DefaultMinAICount), cfg.MinAICount)
	assert.Equal(t, []string{"gonna"}, cfg.FunctionWords["en"])
}

func TestLoadBuildConfigErrors(t *testing.T) {
	_, err := LoadBuildConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: tiny\n"), 0o644))
	_, err = LoadBuildConfig(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("window: -1\n"), 0o644))
	_, err = LoadBuildConfig(path)
	require.Error(t, err)
}

func TestDatasetKey(t *testing.T) {
	k, err := ParseDatasetKey("en/news/gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, DatasetKey{Language: "en", Register: "news", Model: "gpt-4o"}, k)
	assert.Equal(t, "en_news_gpt-4o.json", k.FileName())
	assert.Equal(t, "en/news/gpt-4o", k.String())

	assert.True(t, DatasetKey{Language: "de", Register: "z", Model: "z"}.Less(k))
	assert.True(t, DatasetKey{Language: "en", Register: "news", Model: "a"}.Less(k))
	assert.False(t, k.Less(k))

	for _, bad := range []string{"en/news", "en//gpt", "a/b/c/d"} {
		_, err := ParseDatasetKey(bad)
		assert.Error(t, err, bad)
	}
}

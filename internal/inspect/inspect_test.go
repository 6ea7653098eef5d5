package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/manifest"
	"github.com/dtnitsch/lexa-index/pkg/storage"
)

func record(word, class, las string, ratio *string) models.Record {
	r := models.Record{
		Word:          word,
		POSClass:      class,
		UPOS:          "NOUN",
		OPMAI:         "10",
		OPMHuman:      "5",
		LAS:           json.Number(las),
		RatioSmoothed: "1.5",
		LPR:           "0",
	}
	if ratio != nil {
		r.Ratio = models.DefinedRatio(json.Number(*ratio))
	}
	return r
}

func sampleRecords() []models.Record {
	two := "2"
	return []models.Record{
		record("delve", "content", "0.41", &two),
		record("said", "content", "-0.3", &two),
		record("the", "function", "0.2", &two),
		record("tapestry", "content", "0.1", nil),
		record("um", "function", "-0.05", &two),
		record("even", "content", "0", &two),
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sampleRecords(), Options{Top: 2, Fields: "w,l"})
	require.NoError(t, err)

	assert.Equal(t, 6, s.Records)
	assert.Equal(t, 4, s.ContentWords)
	assert.Equal(t, 2, s.FunctionWords)
	assert.Equal(t, 1, s.UndefinedRatios)
	assert.Equal(t, 3, s.AILeaning)
	assert.Equal(t, 2, s.HumanLeaning)
	assert.Equal(t, []string{"delve:0.41", "said:-0.3"}, s.TopKeywords)

	require.Len(t, s.AIMarkers, 2)
	assert.Equal(t, map[string]interface{}{"word": "delve", "las": 0.41}, s.AIMarkers[0])
	assert.Equal(t, "the", s.AIMarkers[1]["word"])
	require.Len(t, s.HumanMarkers, 2)
	assert.Equal(t, "um", s.HumanMarkers[1]["word"])
}

func TestSummarizePOSFilter(t *testing.T) {
	s, err := Summarize(sampleRecords(), Options{Top: 5, POSClass: "function"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Records)
	assert.Equal(t, 0, s.ContentWords)
	assert.Equal(t, []string{"the:0.2", "um:-0.05"}, s.TopKeywords)
}

func TestSummarizeRejectsBadLAS(t *testing.T) {
	_, err := Summarize([]models.Record{record("x", "content", "n/a", nil)}, Options{Top: 1})
	require.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	got, err := resolvePath("en/news/gpt-4", "out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "en_news_gpt-4.json"), got)

	got, err = resolvePath("somewhere/en_news_gpt-4.json", "out")
	require.NoError(t, err)
	assert.Equal(t, "somewhere/en_news_gpt-4.json", got)

	_, err = resolvePath("en/news", "out")
	require.Error(t, err)
}

func newApp(out *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:   "lexa",
		Writer: out,
		Commands: []*cli.Command{{
			Name:   "inspect",
			Action: InspectAction,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "output-dir", Value: "data"},
				&cli.IntFlag{Name: "top", Value: 10},
				&cli.StringFlag{Name: "fields"},
				&cli.StringFlag{Name: "pos"},
			},
		}},
	}
}

func TestInspectAction(t *testing.T) {
	dir := t.TempDir()
	key := models.DatasetKey{Language: "en", Register: "news", Model: "gpt-4"}
	s := &storage.Storage{}
	_, _, err := manifest.WriteDataset(context.Background(), s, dir, key, sampleRecords())
	require.NoError(t, err)
	entry := manifest.IndexEntry{Lang: "en", Language: "English", Register: "news", Model: "gpt-4", File: key.FileName(), Records: 6}
	_, err = manifest.GenerateIndex(context.Background(), s, dir, []manifest.IndexEntry{entry})
	require.NoError(t, err)

	var out bytes.Buffer
	err = newApp(&out).Run([]string{"lexa", "inspect", "--output-dir", dir, "--top", "1", "en/news/gpt-4"})
	require.NoError(t, err)

	var got Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, filepath.Join(dir, "en_news_gpt-4.json"), got.File)
	info, err := os.Stat(got.File)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), got.SizeBytes)
	require.NotNil(t, got.Dataset)
	assert.Equal(t, "English", got.Dataset.Language)
	assert.Equal(t, 6, got.Records)
	assert.Equal(t, []string{"delve:0.41"}, got.TopKeywords)
}

func TestInspectActionErrors(t *testing.T) {
	var out bytes.Buffer
	app := newApp(&out)

	require.Error(t, app.Run([]string{"lexa", "inspect"}))
	require.Error(t, app.Run([]string{"lexa", "inspect", "--pos", "verbs", "x.json"}))

	missing := filepath.Join(t.TempDir(), "nope.json")
	err := app.Run([]string{"lexa", "inspect", missing})
	require.Error(t, err)
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInspectActionWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	key := models.DatasetKey{Language: "en", Register: "news", Model: "gpt-4"}
	path, _, err := manifest.WriteDataset(context.Background(), &storage.Storage{}, dir, key, sampleRecords())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"lexa", "inspect", path}))

	var got Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Nil(t, got.Dataset)
	assert.Equal(t, 6, got.Records)
}

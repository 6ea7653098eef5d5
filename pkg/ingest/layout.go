package ingest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/lexa-index/internal/common"
	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/mapreduce"
	"github.com/dtnitsch/lexa-index/pkg/postag"
)

const (
	wordTablePrefix = "las_word_"
	summaryPrefix   = "summary_"
)

// LayoutSource is one word table found under the input root.
type LayoutSource struct {
	Key         models.DatasetKey
	Dir         string
	ModelFolder string
	CSVPath     string
	SummaryPath string
}

// DiscoverLayout walks root for <register>/<model>/las_word_<lang>.csv files.
// Tables that sit less than two directories below root are returned in skipped.
func DiscoverLayout(root string) (sources []LayoutSource, skipped []string, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, missing(root, errors.New("input root not found"))
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("input root %s is not a directory", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasPrefix(name, wordTablePrefix) || !strings.HasSuffix(name, ".csv") {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if rel == "." || len(parts) < 2 {
			skipped = append(skipped, path)
			return nil
		}

		lang := strings.TrimSuffix(strings.TrimPrefix(name, wordTablePrefix), ".csv")
		dir := filepath.Dir(path)
		sources = append(sources, LayoutSource{
			Key: models.DatasetKey{
				Language: strings.ToLower(lang),
				Register: parts[0],
				Model:    common.CleanModelName(parts[1]),
			},
			Dir:         dir,
			ModelFolder: parts[1],
			CSVPath:     path,
			SummaryPath: filepath.Join(dir, summaryPrefix+lang+".json"),
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Key != sources[j].Key {
			return sources[i].Key.Less(sources[j].Key)
		}
		return sources[i].CSVPath < sources[j].CSVPath
	})
	for i := 1; i < len(sources); i++ {
		if sources[i].Key == sources[i-1].Key {
			return nil, nil, fmt.Errorf("%s and %s both map to dataset %s",
				sources[i-1].Dir, sources[i].Dir, sources[i].Key)
		}
	}

	return sources, skipped, nil
}

// LoadLayout discovers and reads every dataset under root.
func LoadLayout(root string, opts ReadOptions) ([]Loaded, []string, error) {
	sources, skipped, err := DiscoverLayout(root)
	if err != nil {
		return nil, nil, err
	}

	loaded := make([]Loaded, 0, len(sources))
	for _, src := range sources {
		ds, err := ReadLayoutSource(src, opts)
		loaded = append(loaded, Loaded{Key: src.Key, Source: src.Dir, Dataset: ds, Err: err})
	}
	return loaded, skipped, nil
}

// ReadLayoutSource reads one word table and its summary.
func ReadLayoutSource(src LayoutSource, opts ReadOptions) (models.Dataset, error) {
	ds := models.Dataset{Key: src.Key, Source: src.Dir}

	summary, err := ReadSummary(src.SummaryPath)
	if err != nil {
		return ds, err
	}

	// Token totals follow the window the corpus was paired with; an override
	// only changes the window used for likelihoods.
	pairedWindow := summary.Window(opts.defaultWindow())
	ds.Pairs = summary.Pairs()
	ds.AITokens, ds.HumanTokens = summary.TokenTotals(pairedWindow)
	ds.Window = pairedWindow
	if opts.Window > 0 {
		ds.Window = opts.Window
	}

	f, err := os.Open(src.CSVPath)
	if errors.Is(err, fs.ErrNotExist) {
		return ds, missing(src.CSVPath, errors.New("word table not found"))
	}
	if err != nil {
		return ds, fmt.Errorf("failed to open %s: %w", src.CSVPath, err)
	}
	defer f.Close()

	entries, read, dropped, err := readWordTable(src.CSVPath, f)
	if err != nil {
		return ds, err
	}
	ds.Entries = mapreduce.MergeEntries(entries)
	ds.RowsRead = read
	ds.RowsDropped = dropped
	return ds, nil
}

func readWordTable(file string, r io.Reader) (entries []models.Entry, read, dropped int, err error) {
	reader, err := NewReader(file, r, LayoutSchema)
	if err != nil {
		return nil, 0, 0, err
	}

	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, read, dropped, err
		}
		read++

		word := common.NormalizeWord(row.String("form"))
		if !common.HasAnyAlnum(word) {
			dropped++
			continue
		}

		ai, err := count(file, row, "c_M")
		if err != nil {
			return nil, read, dropped, err
		}
		human, err := count(file, row, "c_H")
		if err != nil {
			return nil, read, dropped, err
		}

		entry := models.Entry{
			Word:       word,
			UPOS:       postag.NormalizeTag(row.String("upos")),
			AICount:    ai,
			HumanCount: human,
			Row:        row.Line,
		}
		if ref, ok := row.Number("LAS"); ok {
			entry.ReferenceLAS = &ref
		}
		entries = append(entries, entry)
	}
	return entries, read, dropped, nil
}

package ingest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/dtnitsch/lexa-index/internal/common"
	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/mapreduce"
	"github.com/dtnitsch/lexa-index/pkg/postag"
)

// sliceKey identifies one corpus slice of an observation file.
type sliceKey struct {
	language string
	register string
	source   string
}

type slice struct {
	tokens      float64
	tokensRow   int
	obs         []models.Observation
	rowsRead    int
	rowsDropped int
}

// LoadObservations reads a long-format observation file and pairs every model
// slice with the human slice of the same language and register.
//
// A malformed row fails the whole file. A model slice with no human
// counterpart fails only its own dataset.
func LoadObservations(path string, opts ReadOptions) ([]Loaded, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, missing(path, errors.New("observation file not found"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	slices, err := readObservations(path, f)
	if err != nil {
		return nil, err
	}

	window := opts.defaultWindow()
	if opts.Window > 0 {
		window = opts.Window
	}

	var loaded []Loaded
	for key, ai := range slices {
		if key.source == models.HumanSource {
			continue
		}
		dk := models.DatasetKey{Language: key.language, Register: key.register, Model: key.source}
		l := Loaded{Key: dk, Source: path}

		human, ok := slices[sliceKey{language: key.language, register: key.register, source: models.HumanSource}]
		if !ok {
			l.Err = &InputError{
				Kind:   ErrMissingFile,
				File:   path,
				Column: "model",
				Err:    fmt.Errorf("no %q rows for %s/%s", models.HumanSource, key.language, key.register),
			}
			loaded = append(loaded, l)
			continue
		}

		l.Dataset = models.Dataset{
			Key:         dk,
			Source:      path,
			Window:      window,
			AITokens:    ai.tokens,
			HumanTokens: human.tokens,
			Entries:     mapreduce.Pair(mapreduce.Map(ai.obs), mapreduce.Map(human.obs)),
			RowsRead:    ai.rowsRead + human.rowsRead,
			RowsDropped: ai.rowsDropped + human.rowsDropped,
		}
		loaded = append(loaded, l)
	}

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Key.Less(loaded[j].Key) })
	return loaded, nil
}

func readObservations(file string, r io.Reader) (map[sliceKey]*slice, error) {
	reader, err := NewReader(file, r, ObservationSchema)
	if err != nil {
		return nil, err
	}

	slices := make(map[sliceKey]*slice)
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		o := models.Observation{
			Language: strings.ToLower(row.String("language")),
			Register: row.String("register"),
			Source:   row.String("model"),
			Word:     common.NormalizeWord(row.String("word")),
			UPOS:     postag.NormalizeTag(row.String("upos")),
			Row:      row.Line,
		}
		if strings.EqualFold(o.Source, models.HumanSource) {
			o.Source = models.HumanSource
		}
		for _, c := range [][2]string{{"language", o.Language}, {"register", o.Register}, {"model", o.Source}} {
			if !safeName(c[1]) {
				return nil, malformed(file, row.Line, c[0], fmt.Errorf("%q cannot be used in a file name", c[1]))
			}
		}

		if o.Count, err = count(file, row, "count"); err != nil {
			return nil, err
		}
		if o.Tokens, err = count(file, row, "tokens"); err != nil {
			return nil, err
		}

		key := sliceKey{language: o.Language, register: o.Register, source: o.Source}
		s, ok := slices[key]
		if !ok {
			s = &slice{tokens: o.Tokens, tokensRow: row.Line}
			slices[key] = s
		}
		if o.Tokens != s.tokens {
			return nil, malformed(file, row.Line, "tokens",
				fmt.Errorf("token total %g differs from %g given on row %d for %s/%s/%s",
					o.Tokens, s.tokens, s.tokensRow, o.Language, o.Register, o.Source))
		}

		s.rowsRead++
		if !common.HasAnyAlnum(o.Word) {
			s.rowsDropped++
			continue
		}
		s.obs = append(s.obs, o)
	}
	return slices, nil
}

func safeName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}

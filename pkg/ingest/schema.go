package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column describes one CSV column of an input schema.
type Column struct {
	Name     string
	Required bool
	Numeric  bool
	// BlankZero reads an empty numeric cell as 0 instead of rejecting it.
	BlankZero bool
}

// Schema is the ordered set of columns a CSV input is validated against.
type Schema struct {
	Columns []Column
}

// LayoutSchema is the per-language word table of a layout tree.
var LayoutSchema = Schema{Columns: []Column{
	{Name: "form", Required: true},
	{Name: "c_M", Required: true, Numeric: true, BlankZero: true},
	{Name: "c_H", Required: true, Numeric: true, BlankZero: true},
	{Name: "upos"},
	{Name: "LAS", Numeric: true},
}}

// ObservationSchema is the combined long-format observation file.
var ObservationSchema = Schema{Columns: []Column{
	{Name: "language", Required: true},
	{Name: "register", Required: true},
	{Name: "model", Required: true},
	{Name: "word", Required: true},
	{Name: "count", Required: true, Numeric: true},
	{Name: "tokens", Required: true, Numeric: true},
	{Name: "upos"},
}}

// Row is one validated CSV record.
type Row struct {
	Line    int
	strings map[string]string
	numbers map[string]float64
	present map[string]bool
}

// String returns a text cell, trimmed. Absent columns read as "".
func (r Row) String(name string) string {
	return r.strings[name]
}

// Number returns a numeric cell. ok is false when the column is absent or blank.
func (r Row) Number(name string) (v float64, ok bool) {
	if !r.present[name] {
		return 0, false
	}
	return r.numbers[name], true
}

// Reader streams rows of a CSV file validated against a schema.
type Reader struct {
	file   string
	schema Schema
	csv    *csv.Reader
	index  map[string]int
}

// NewReader reads and checks the header line.
func NewReader(file string, r io.Reader, schema Schema) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(file, 1, "", errors.New("empty file, expected a header"))
	}
	if err != nil {
		return nil, malformed(file, 1, "", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := index[name]; dup {
			return nil, malformed(file, 1, name, errors.New("duplicate column"))
		}
		index[name] = i
	}
	for _, col := range schema.Columns {
		if _, ok := index[col.Name]; col.Required && !ok {
			return nil, malformed(file, 1, col.Name, errors.New("required column missing"))
		}
	}

	return &Reader{file: file, schema: schema, csv: cr, index: index}, nil
}

// Next returns the next validated row, or io.EOF.
func (r *Reader) Next() (Row, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return Row{}, malformed(r.file, perr.Line, "", perr.Err)
		}
		return Row{}, malformed(r.file, 0, "", err)
	}
	line, _ := r.csv.FieldPos(0)

	row := Row{
		Line:    line,
		strings: make(map[string]string, len(r.schema.Columns)),
		numbers: make(map[string]float64),
		present: make(map[string]bool),
	}
	for _, col := range r.schema.Columns {
		i, ok := r.index[col.Name]
		if !ok {
			continue
		}
		if i >= len(rec) {
			if col.Required {
				return Row{}, malformed(r.file, line, col.Name, fmt.Errorf("row has %d fields, column is field %d", len(rec), i+1))
			}
			continue
		}
		cell := strings.TrimSpace(rec[i])
		row.strings[col.Name] = cell
		if !col.Numeric {
			if col.Required && cell == "" {
				return Row{}, malformed(r.file, line, col.Name, errors.New("value is empty"))
			}
			continue
		}

		if cell == "" {
			if col.BlankZero {
				row.numbers[col.Name] = 0
				row.present[col.Name] = true
				continue
			}
			if col.Required {
				return Row{}, malformed(r.file, line, col.Name, errors.New("value is empty"))
			}
			continue
		}
		v, err := parseNumber(cell)
		if err != nil {
			return Row{}, malformed(r.file, line, col.Name, err)
		}
		row.numbers[col.Name] = v
		row.present[col.Name] = true
	}
	return row, nil
}

func parseNumber(cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", cell)
	}
	return v, nil
}

// count reads a non-negative count column.
func count(file string, row Row, name string) (float64, error) {
	v, _ := row.Number(name)
	if v < 0 {
		return 0, malformed(file, row.Line, name, fmt.Errorf("count must be >= 0, got %g", v))
	}
	return v, nil
}

package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Input error kinds. Use errors.Is to test an error against them.
var (
	// ErrMalformedInput: a row, column or summary could not be read under the schema.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingFile: an expected source (summary file, human slice) is absent.
	ErrMissingFile = errors.New("missing file")
)

// InputError pinpoints the file and location of a rejected input.
type InputError struct {
	Kind   error
	File   string
	Row    int    // 1-based line, 0 when the error is not tied to a row
	Column string // empty when the error is not tied to a column
	Err    error
}

func (e *InputError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")
	sb.WriteString(e.File)
	if e.Row > 0 {
		fmt.Fprintf(&sb, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&sb, " column %q", e.Column)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(file string, row int, column string, err error) *InputError {
	return &InputError{Kind: ErrMalformedInput, File: file, Row: row, Column: column, Err: err}
}

func missing(file string, err error) *InputError {
	return &InputError{Kind: ErrMissingFile, File: file, Err: err}
}

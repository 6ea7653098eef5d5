package build

import (
	"context"
	"errors"
	"os"

	"github.com/dtnitsch/lexa-index/pkg/ingest"
)

// ErrorKind is the coarse category of a failed dataset, stored in the ledger.
type ErrorKind string

const (
	KindUnknown   ErrorKind = "unknown"
	KindMalformed ErrorKind = "malformed_input"
	KindMissing   ErrorKind = "missing_file"
	KindCancel    ErrorKind = "cancel"
	KindIO        ErrorKind = "io"
)

// Classify maps an error to its kind using sentinels and error types only.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancel
	}
	if errors.Is(err, ingest.ErrMalformedInput) {
		return KindMalformed
	}
	if errors.Is(err, ingest.ErrMissingFile) {
		return KindMissing
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return KindIO
	}
	var lerr *os.LinkError
	if errors.As(err, &lerr) {
		return KindIO
	}
	return KindUnknown
}

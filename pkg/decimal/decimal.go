// Package decimal formats computed floats as fixed-place JSON numbers.
// Rounding goes through apd so the same input always yields the same digits.
package decimal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Rounder rounds float64 values to a fixed number of decimal places, half-even.
type Rounder struct {
	ctx *apd.Context
}

// NewRounder creates a Rounder with 34 digits of working precision.
func NewRounder() *Rounder {
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfEven
	return &Rounder{ctx: ctx}
}

// Round returns f rounded to places decimal digits as a decimal string.
// Trailing zeros are trimmed and negative zero becomes "0".
func (r *Rounder) Round(f float64, places int32) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("cannot round non-finite value %v", f)
	}

	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return "", fmt.Errorf("invalid decimal %v: %w", f, err)
	}
	if _, err := r.ctx.Quantize(&d, &d, -places); err != nil {
		return "", fmt.Errorf("failed to round %v to %d places: %w", f, places, err)
	}
	if d.IsZero() {
		return "0", nil
	}
	return trimZeros(d.Text('f')), nil
}

// RoundNonZero is Round, except that a nonzero value which would round to
// zero is instead kept to places significant digits, so its sign survives.
func (r *Rounder) RoundNonZero(f float64, places int32) (string, error) {
	s, err := r.Round(f, places)
	if err != nil || s != "0" || f == 0 {
		return s, err
	}

	digits := uint32(1)
	if places > 1 {
		digits = uint32(places)
	}
	ctx := r.ctx.WithPrecision(digits)
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return "", fmt.Errorf("invalid decimal %v: %w", f, err)
	}
	if _, err := ctx.Round(&d, &d); err != nil {
		return "", fmt.Errorf("failed to round %v to %d digits: %w", f, digits, err)
	}
	return trimZeros(d.Text('f')), nil
}

// Number is Round as a json.Number.
func (r *Rounder) Number(f float64, places int32) (json.Number, error) {
	s, err := r.Round(f, places)
	if err != nil {
		return "", err
	}
	return json.Number(s), nil
}

// Float is Round parsed back into a float64, used for ordering on written values.
func (r *Rounder) Float(f float64, places int32) (float64, error) {
	s, err := r.Round(f, places)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

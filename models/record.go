package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RatioUndefined is written in place of a ratio whose denominator is zero.
const RatioUndefined = "undefined"

// Record is one aggregated word row of an emitted dataset.
type Record struct {
	Word          string      `json:"word"`
	POSClass      string      `json:"pos_class"`
	UPOS          string      `json:"upos"`
	OPMAI         json.Number `json:"opm_ai"`
	OPMHuman      json.Number `json:"opm_human"`
	LAS           json.Number `json:"las"`
	Ratio         Ratio       `json:"ratio"`
	RatioSmoothed json.Number `json:"ratio_smoothed"`
	LPR           json.Number `json:"lpr"`
	// RankLAS is the record's 1-based position in the file; RankLPR ranks by descending lpr.
	RankLAS int `json:"rk_las"`
	RankLPR int `json:"rk_lpr"`
}

// Ratio is AI OPM over human OPM, or undefined when human OPM is zero.
type Ratio struct {
	Value   json.Number
	Defined bool
}

// DefinedRatio wraps an already formatted ratio value.
func DefinedRatio(v json.Number) Ratio {
	return Ratio{Value: v, Defined: true}
}

func (r Ratio) String() string {
	if !r.Defined {
		return RatioUndefined
	}
	return r.Value.String()
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return json.Marshal(RatioUndefined)
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != RatioUndefined {
			return fmt.Errorf("invalid ratio %q", s)
		}
		*r = Ratio{}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid ratio: %w", err)
	}
	*r = DefinedRatio(n)
	return nil
}

func (r Ratio) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

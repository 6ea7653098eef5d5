package models

import (
	"fmt"
	"strings"
)

// HumanSource is the source name used for human-written text in observation files.
const HumanSource = "human"

// Observation is one raw count of a word inside a corpus slice.
type Observation struct {
	Language string
	Register string
	Source   string // model name or HumanSource
	Word     string
	UPOS     string
	Count    float64
	Tokens   float64
	Row      int
}

// DatasetKey identifies one emitted dataset.
type DatasetKey struct {
	Language string `json:"lang" yaml:"lang"`
	Register string `json:"register" yaml:"register"`
	Model    string `json:"model" yaml:"model"`
}

// FileName is the dataset's file name inside the output directory.
func (k DatasetKey) FileName() string {
	return fmt.Sprintf("%s_%s_%s.json", k.Language, k.Register, k.Model)
}

// ParseDatasetKey parses the "lang/register/model" form produced by String.
func ParseDatasetKey(s string) (DatasetKey, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return DatasetKey{}, fmt.Errorf("invalid dataset key %q (want lang/register/model)", s)
	}
	return DatasetKey{Language: parts[0], Register: parts[1], Model: parts[2]}, nil
}

func (k DatasetKey) String() string {
	return k.Language + "/" + k.Register + "/" + k.Model
}

// Less orders keys by language, register, then model.
func (k DatasetKey) Less(o DatasetKey) bool {
	if k.Language != o.Language {
		return k.Language < o.Language
	}
	if k.Register != o.Register {
		return k.Register < o.Register
	}
	return k.Model < o.Model
}

// Entry pairs the AI and human counts of one word.
type Entry struct {
	Word       string
	UPOS       string
	AICount    float64
	HumanCount float64
	// ReferenceLAS is a precomputed LAS shipped with the input, if any.
	ReferenceLAS *float64
	Row          int
}

// Dataset is everything needed to compute one output file.
type Dataset struct {
	Key         DatasetKey
	Source      string // file or directory the dataset was read from
	Window      int
	AITokens    float64
	HumanTokens float64
	Pairs       int
	Entries     []Entry
	RowsRead    int
	RowsDropped int
}

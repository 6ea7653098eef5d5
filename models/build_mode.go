package models

import (
	"fmt"
	"strings"
)

// BuildMode controls which rows of a dataset are written.
type BuildMode int

const (
	// BuildModeFull writes every row that survives validation.
	BuildModeFull BuildMode = iota
	BuildModeCompact // Drops rows the model never produced
)

func (m BuildMode) String() string {
	switch m {
	case BuildModeCompact:
		return "compact"
	default:
		return "full"
	}
}

// ParseBuildMode resolves a mode name from config or flags.
func ParseBuildMode(s string) (BuildMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return BuildModeFull, nil
	case "compact":
		return BuildModeCompact, nil
	}
	return BuildModeFull, fmt.Errorf("unknown mode %q (want full or compact)", s)
}

func (m BuildMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *BuildMode) UnmarshalText(text []byte) error {
	parsed, err := ParseBuildMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

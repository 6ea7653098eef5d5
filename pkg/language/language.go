// Package language validates dataset language codes against ISO 639-1.
package language

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Info describes a resolved language code.
type Info struct {
	Code string // lower-case ISO 639-1, e.g. "en"
	Name string // English display name, e.g. "English"
}

// Resolve maps a code such as "en" or "DE" to its language.
// Codes lingua does not know are rejected.
func Resolve(code string) (Info, error) {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return Info{}, fmt.Errorf("invalid language code %q: want a two-letter ISO 639-1 code", code)
	}

	iso := lingua.GetIsoCode639_1FromValue(strings.ToUpper(code))
	lang := lingua.GetLanguageFromIsoCode639_1(iso)
	if lang == lingua.Unknown {
		return Info{}, fmt.Errorf("unknown language code %q", code)
	}

	return Info{
		Code: strings.ToLower(code),
		Name: displayName(lang),
	}, nil
}

// displayName turns lingua's upper-case names (e.g. "ENGLISH") into title case.
func displayName(lang lingua.Language) string {
	name := strings.ToLower(lang.String())
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

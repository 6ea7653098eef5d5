package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fieldNameMap maps short record field aliases to their JSON names.
var fieldNameMap = map[string]string{
	"w":  "word",
	"p":  "pos_class",
	"u":  "upos",
	"a":  "opm_ai",
	"h":  "opm_human",
	"r":  "ratio",
	"rs": "ratio_smoothed",
	"l":  "las",
	"lp": "lpr",
	"kl": "rk_las",
	"kp": "rk_lpr",
}

// FilterFields converts v to a map and keeps only the comma-separated fields.
// Aliases from fieldNameMap are accepted. An empty list keeps everything.
func FilterFields(v interface{}, fieldsStr string) map[string]interface{} {
	full := structToMap(v)
	if strings.TrimSpace(fieldsStr) == "" {
		return full
	}

	include := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if long, ok := fieldNameMap[field]; ok {
			field = long
		}
		include[field] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range full {
		if include[key] {
			filtered[key] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

var modelDateSuffix = regexp.MustCompile(`-\d{4}-\d{2}-\d{2}.*$`)

// CleanModelName turns an experiment folder name into a model name.
// Example: "las-gpt-4o-2024-08-06_run2" -> "gpt-4o"
func CleanModelName(folder string) string {
	name := strings.ReplaceAll(folder, "las-", "")
	return modelDateSuffix.ReplaceAllString(name, "")
}

// HasAnyAlnum reports whether s contains at least one letter or digit in any script.
func HasAnyAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// NormalizeWord trims a word form and puts it in Unicode NFC so that
// differently composed spellings pair up and sort the same way.
func NormalizeWord(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

package help

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestQuickstartIsValidYAML(t *testing.T) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(QuickstartYAML), &doc); err != nil {
		t.Fatalf("QuickstartYAML does not parse: %v", err)
	}
	for _, key := range []string{"commands", "outputs", "record_fields", "field_aliases"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("QuickstartYAML missing %q", key)
		}
	}
}

func TestQuickstartMentionsEveryCommand(t *testing.T) {
	for _, cmd := range []string{"lexa build", "lexa inspect", "lexa history"} {
		if !strings.Contains(QuickstartYAML, cmd) {
			t.Errorf("QuickstartYAML does not mention %q", cmd)
		}
	}
}

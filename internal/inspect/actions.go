package inspect

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/lexa-index/models"
	"github.com/dtnitsch/lexa-index/pkg/manifest"
	"github.com/dtnitsch/lexa-index/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// InspectAction prints a YAML summary of one dataset. The argument is either a
// dataset file path or a lang/register/model key resolved against --output-dir.
func InspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected one dataset file or lang/register/model key")
	}
	path, err := resolvePath(c.Args().First(), c.String("output-dir"))
	if err != nil {
		return err
	}

	pos := strings.ToLower(c.String("pos"))
	if pos != "" && pos != "content" && pos != "function" {
		return fmt.Errorf("invalid --pos %q (want content or function)", pos)
	}

	s := &storage.Storage{}
	stats, err := s.GetFileStats(path)
	if err != nil {
		return err
	}
	records, err := manifest.ReadDataset(s, path)
	if err != nil {
		return err
	}
	summary, err := Summarize(records, Options{Top: c.Int("top"), Fields: c.String("fields"), POSClass: pos})
	if err != nil {
		return err
	}
	summary.File = path
	summary.SizeBytes = stats.SizeBytes
	summary.Dataset = lookupIndex(s, path)

	yamlBytes, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Fprint(c.App.Writer, string(yamlBytes))
	return nil
}

func resolvePath(arg, outputDir string) (string, error) {
	if strings.HasSuffix(arg, ".json") {
		return arg, nil
	}
	key, err := models.ParseDatasetKey(arg)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, key.FileName()), nil
}

// lookupIndex finds the dataset's index.json entry next to it, if there is one.
func lookupIndex(s *storage.Storage, path string) *manifest.IndexEntry {
	dir := filepath.Dir(path)
	if !s.HasFile(filepath.Join(dir, manifest.IndexFile)) {
		return nil
	}
	entries, err := manifest.ReadIndex(s, dir)
	if err != nil {
		return nil
	}
	name := filepath.Base(path)
	for i := range entries {
		if entries[i].File == name {
			return &entries[i]
		}
	}
	return nil
}

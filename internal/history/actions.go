package history

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	dbpkg "github.com/dtnitsch/lexa-index/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// BuildDetails is the YAML view of one build and its datasets.
type BuildDetails struct {
	Build    *dbpkg.Build           `yaml:"build"`
	Datasets []dbpkg.DatasetOutcome `yaml:"datasets"`
}

// HistoryAction lists recent builds, or shows one build when an id is given.
func HistoryAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if c.NArg() > 0 {
		buildID, err := strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid build ID: %s", c.Args().First())
		}
		return showBuild(c.App.Writer, database, buildID)
	}
	return listBuilds(c.App.Writer, database, c.Int("limit"))
}

func listBuilds(w io.Writer, database *dbpkg.DB, limit int) error {
	builds, err := database.ListBuilds(limit)
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}
	if len(builds) == 0 {
		fmt.Fprintln(w, "No builds found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-8s %-8s %-8s %-30s\n",
		"ID", "Started", "Status", "OK", "Failed", "Mode", "Output Dir")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, b := range builds {
		fmt.Fprintf(w, "%-6d %-20s %-8s %-8d %-8d %-8s %-30s\n",
			b.BuildID,
			b.StartedAt.Format("2006-01-02 15:04:05"),
			b.Status,
			b.DatasetsOK,
			b.DatasetsFailed,
			b.Mode,
			b.OutputDir,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d builds\n", len(builds))
	fmt.Fprintf(w, "\nTip: Use 'lexa history <id>' to see dataset outcomes\n")
	return nil
}

func showBuild(w io.Writer, database *dbpkg.DB, buildID int64) error {
	build, err := database.GetBuild(buildID)
	if err != nil {
		return err
	}
	datasets, err := database.GetBuildDatasets(buildID)
	if err != nil {
		return err
	}

	yamlBytes, err := yaml.Marshal(BuildDetails{Build: build, Datasets: datasets})
	if err != nil {
		return fmt.Errorf("failed to marshal build: %w", err)
	}
	fmt.Fprint(w, string(yamlBytes))
	return nil
}

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DatasetsDir     = "datasets"
	ReportsDir      = "reports"
	DatasetFileName = "game_words.json"
)

// Layout names the artifact paths under one training output root.
type Layout struct {
	Root     string
	Datasets string
	Reports  string
}

// DatasetPath is where the trainer publishes the scored words.
func (l Layout) DatasetPath() string {
	return filepath.Join(l.Datasets, DatasetFileName)
}

// ReportPath is the report file for one training run.
func (l Layout) ReportPath(runID string) string {
	return filepath.Join(l.Reports, "training-"+runID+".json")
}

// EnsureAt creates the artifact directories under base.
func EnsureAt(base string) (Layout, error) {
	l := Layout{
		Root:     base,
		Datasets: filepath.Join(base, DatasetsDir),
		Reports:  filepath.Join(base, ReportsDir),
	}
	for _, p := range []string{l.Datasets, l.Reports} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return Layout{}, fmt.Errorf("mkdir %s: %w", p, err)
		}
	}
	return l, nil
}

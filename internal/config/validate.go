package config

import (
	"fmt"
	"strings"
)

const (
	DatasetSourceJSON   = "json"
	DatasetSourceSQLite = "sqlite"
)

// Validate checks business rules after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	c.Dataset.Source = strings.ToLower(strings.TrimSpace(c.Dataset.Source))
	switch c.Dataset.Source {
	case DatasetSourceJSON:
		if c.Dataset.Path == "" {
			return fmt.Errorf("dataset.path is required for source %q", c.Dataset.Source)
		}
	case DatasetSourceSQLite:
		if c.Dataset.SQLitePath == "" {
			return fmt.Errorf("dataset.sqlite_path is required for source %q", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("dataset.source must be %q or %q (got %q)", DatasetSourceJSON, DatasetSourceSQLite, c.Dataset.Source)
	}

	if err := c.Training.validate(); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	return nil
}

func (t *TrainingConfig) validate() error {
	if t.Trees <= 0 {
		return fmt.Errorf("trees must be > 0 (got %d)", t.Trees)
	}
	if t.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be > 0 (got %d)", t.MaxDepth)
	}
	if t.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", t.Workers)
	}
	if t.SegmentWords <= 0 {
		return fmt.Errorf("segment_words must be > 0 (got %d)", t.SegmentWords)
	}
	return nil
}

// SplitList turns a comma-separated config value into trimmed, non-empty items.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

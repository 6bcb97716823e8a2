package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// TrainingReport summarizes one run of the offline scoring pipeline.
type TrainingReport struct {
	RunID          string    `json:"run_id"`
	Sources        []string  `json:"sources"`
	HarvestedWords int       `json:"harvested_words"`
	RejectedWords  int       `json:"rejected_words"`
	ExportedWords  int       `json:"exported_words"`
	TrainingR2     float64   `json:"training_r2"`
	RawMin         float64   `json:"raw_min"`
	RawMax         float64   `json:"raw_max"`
	Degenerate     bool      `json:"degenerate"`
	DatasetPath    string    `json:"dataset_path"`
	SQLitePath     string    `json:"sqlite_path,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

func SaveReport(path string, report TrainingReport) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func LoadReport(path string) (TrainingReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TrainingReport{}, fmt.Errorf("read report: %w", err)
	}
	var report TrainingReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return TrainingReport{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

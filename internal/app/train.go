package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"wordpace/internal/config"
	"wordpace/internal/dataset"
	"wordpace/internal/db"
	"wordpace/internal/features"
	"wordpace/internal/ingest"
	"wordpace/internal/regress"
	"wordpace/internal/workspace"
)

// TrainOptions configures one offline scoring run.
type TrainOptions struct {
	Sources    []string
	OutDir     string
	SQLitePath string
	Forest     regress.Options
	Harvest    ingest.Options
}

// TrainOptionsFrom maps the training config section onto TrainOptions.
func TrainOptionsFrom(cfg config.TrainingConfig, sources []string) TrainOptions {
	return TrainOptions{
		Sources:    sources,
		OutDir:     cfg.OutDir,
		SQLitePath: cfg.SQLitePath,
		Forest: regress.Options{
			Trees:    cfg.Trees,
			MaxDepth: cfg.MaxDepth,
			Seed:     cfg.Seed,
		},
		Harvest: ingest.Options{
			Workers:      cfg.Workers,
			SegmentWords: cfg.SegmentWords,
		},
	}
}

// Train harvests the sources, scores every word with a forest fitted on the
// reference set and publishes the dataset. Nothing is written when the
// harvest fails.
func Train(ctx context.Context, logger *slog.Logger, opts TrainOptions) (workspace.TrainingReport, error) {
	report := workspace.TrainingReport{
		RunID:     uuid.NewString(),
		Sources:   opts.Sources,
		StartedAt: time.Now().UTC(),
	}
	log := logger.With(slog.String("run_id", report.RunID))

	words, err := ingest.HarvestFiles(opts.Sources, opts.Harvest)
	if err != nil {
		return report, fmt.Errorf("harvest: %w", err)
	}
	report.HarvestedWords = len(words)
	log.Info("corpus harvested", slog.Int("sources", len(opts.Sources)), slog.Int("words", len(words)))
	if err := ctx.Err(); err != nil {
		return report, err
	}

	forest, err := regress.Fit(regress.Reference(), opts.Forest)
	if err != nil {
		return report, fmt.Errorf("fit forest: %w", err)
	}
	r2, err := forest.Score(regress.Reference())
	if err != nil {
		return report, fmt.Errorf("score forest: %w", err)
	}
	report.TrainingR2 = r2
	log.Info("forest trained", slog.Int("trees", forest.Trees()), slog.Float64("training_r2", r2))

	vectors, kept, rejected := features.ExtractAll(words)
	for _, rerr := range rejected {
		log.Warn("word rejected", slog.String("error", rerr.Error()))
	}
	report.RejectedWords = len(rejected)

	raw := forest.PredictVectors(vectors)
	if len(raw) > 0 {
		report.RawMin, report.RawMax = floats.Min(raw), floats.Max(raw)
	}
	scored, degenerate, err := dataset.Normalize(kept, raw)
	if err != nil {
		return report, err
	}
	if degenerate != nil {
		report.Degenerate = true
		log.Warn("degenerate score range, using fallback difficulty",
			slog.String("detail", degenerate.Error()),
			slog.Float64("difficulty", dataset.DegenerateFallback))
	}
	report.ExportedWords = len(scored)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	layout, err := workspace.EnsureAt(opts.OutDir)
	if err != nil {
		return report, fmt.Errorf("prepare output: %w", err)
	}
	report.DatasetPath = layout.DatasetPath()

	// The SQLite mirror is written first; publishing the JSON file is the
	// commit point of a run.
	report.FinishedAt = time.Now().UTC()
	if opts.SQLitePath != "" {
		run := db.Run{
			ID:         report.RunID,
			StartedAt:  report.StartedAt,
			FinishedAt: report.FinishedAt,
			Sources:    report.Sources,
			TrainingR2: report.TrainingR2,
		}
		if err := db.PersistRun(opts.SQLitePath, run, scored); err != nil {
			return report, fmt.Errorf("mirror dataset: %w", err)
		}
		report.SQLitePath = opts.SQLitePath
		log.Info("dataset mirrored", slog.String("path", opts.SQLitePath))
	}

	if err := dataset.NewFileStore(report.DatasetPath).Save(ctx, scored); err != nil {
		return report, fmt.Errorf("save dataset: %w", err)
	}
	log.Info("dataset exported", slog.String("path", report.DatasetPath), slog.Int("words", len(scored)))

	if err := workspace.SaveReport(layout.ReportPath(report.RunID), report); err != nil {
		return report, err
	}
	return report, nil
}

// Command trainer harvests words from source documents, scores their
// difficulty and publishes the dataset the game server reads.
//
// Flags:
//
//	-source   source document (.pdf, .docx, .html, .txt, .md); repeatable
//	-out      artifact root (datasets/ and reports/ are created under it)
//	-sqlite   optional SQLite file that mirrors the dataset
//	-workers  tokenizer workers (0 = one per CPU)
//
// Flags override the training section of the config.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"wordpace/internal/app"
	"wordpace/internal/config"
)

type sourceList []string

func (s *sourceList) String() string { return strings.Join(*s, ",") }

func (s *sourceList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var sources sourceList
	flag.Var(&sources, "source", "source document to harvest (repeatable)")
	outFlag := flag.String("out", "", "artifact root directory")
	sqliteFlag := flag.String("sqlite", "", "SQLite file to mirror the dataset into")
	workersFlag := flag.Int("workers", -1, "tokenizer workers (0 = one per CPU)")
	flag.Parse()
	sources = append(sources, flag.Args()...)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if *outFlag != "" {
		cfg.Training.OutDir = *outFlag
	}
	if *sqliteFlag != "" {
		cfg.Training.SQLitePath = *sqliteFlag
	}
	if *workersFlag >= 0 {
		cfg.Training.Workers = *workersFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := app.Train(ctx, logger, app.TrainOptionsFrom(cfg.Training, sources))
	if err != nil {
		logger.Error("training failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("training complete",
		slog.String("run_id", report.RunID),
		slog.Int("words", report.ExportedWords),
		slog.Int("rejected", report.RejectedWords),
		slog.Float64("training_r2", report.TrainingR2),
		slog.String("dataset", report.DatasetPath),
	)
}

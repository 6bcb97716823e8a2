package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordpace/internal/config"
	"wordpace/internal/db"
	"wordpace/internal/ingest"
	"wordpace/internal/regress"
	"wordpace/internal/workspace"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSource(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestTrainPublishesDatasetAndReport(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.txt", "The house stood near the garden. A quantum theory of everything.")
	b := writeSource(t, dir, "b.md", "Idiosyncratic philosophy, the planet and the house again. Run, cat, run!")
	out := filepath.Join(dir, "artifacts")
	sqlitePath := filepath.Join(dir, "words.db")

	report, err := Train(context.Background(), discardLogger(), TrainOptions{
		Sources:    []string{a, b},
		OutDir:     out,
		SQLitePath: sqlitePath,
		Forest:     regress.Options{Trees: 20, MaxDepth: 5, Seed: 42},
		Harvest:    ingest.Options{Workers: 2, SegmentWords: 4},
	})
	require.NoError(t, err)

	// Words under four letters are dropped and "house" is counted once.
	assert.Equal(t, 11, report.HarvestedWords)
	assert.Equal(t, 11, report.ExportedWords)
	assert.Zero(t, report.RejectedWords)
	assert.NotEmpty(t, report.RunID)
	assert.LessOrEqual(t, report.RawMin, report.RawMax)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	ds, err := DatasetLoader(config.DatasetConfig{Source: config.DatasetSourceJSON, Path: report.DatasetPath}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, ds.Len())
	words := ds.Words()
	for _, w := range words {
		assert.GreaterOrEqual(t, w.Difficulty, 0.0)
		assert.LessOrEqual(t, w.Difficulty, 1.0)
	}
	if !report.Degenerate {
		assert.Equal(t, 0.0, words[0].Difficulty)
		assert.Equal(t, 1.0, words[len(words)-1].Difficulty)
	}

	mirrored, err := DatasetLoader(config.DatasetConfig{Source: config.DatasetSourceSQLite, SQLitePath: sqlitePath}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ds.Len(), mirrored.Len())

	latest, err := db.LatestRunID(sqlitePath)
	require.NoError(t, err)
	assert.Equal(t, report.RunID, latest)

	saved, err := workspace.LoadReport(filepath.Join(out, workspace.ReportsDir, "training-"+report.RunID+".json"))
	require.NoError(t, err)
	assert.Equal(t, report.ExportedWords, saved.ExportedWords)
	assert.Equal(t, sqlitePath, saved.SQLitePath)
}

func TestTrainHarvestFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.txt", "plenty of usable words here")
	out := filepath.Join(dir, "artifacts")

	_, err := Train(context.Background(), discardLogger(), TrainOptions{
		Sources: []string{good, filepath.Join(dir, "missing.pdf")},
		OutDir:  out,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ingest.ErrCorpusRead))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output dir should not be created")
}

func TestTrainMirrorFailureKeepsPublishedDataset(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.txt", "garden planet theory quantum")
	out := filepath.Join(dir, "artifacts")

	// A directory cannot be opened as a SQLite database.
	_, err := Train(context.Background(), discardLogger(), TrainOptions{
		Sources:    []string{src},
		OutDir:     out,
		SQLitePath: dir,
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(out, workspace.DatasetsDir, workspace.DatasetFileName))
	assert.True(t, os.IsNotExist(statErr), "dataset must not be published when mirroring fails")
}

func TestTrainHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.txt", "garden planet theory")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Train(ctx, discardLogger(), TrainOptions{Sources: []string{src}, OutDir: filepath.Join(dir, "out")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainOptionsFrom(t *testing.T) {
	opts := TrainOptionsFrom(config.TrainingConfig{
		OutDir: "out", SQLitePath: "w.db", Trees: 7, MaxDepth: 3, Seed: 9, Workers: 2, SegmentWords: 50,
	}, []string{"a.pdf"})

	assert.Equal(t, []string{"a.pdf"}, opts.Sources)
	assert.Equal(t, regress.Options{Trees: 7, MaxDepth: 3, Seed: 9}, opts.Forest)
	assert.Equal(t, ingest.Options{Workers: 2, SegmentWords: 50}, opts.Harvest)
	assert.Equal(t, "w.db", opts.SQLitePath)
}

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"wordpace/internal/dataset"
)

// Run describes one training pass whose output is mirrored into SQLite.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Sources    []string
	TrainingR2 float64
}

// PersistRun replaces the stored word set with words and records run, all in
// one transaction. Words are stored at the same precision as the JSON export.
func PersistRun(dbPath string, run Run, words []dataset.ScoredWord) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	sources, err := json.Marshal(run.Sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scored_words`); err != nil {
		return fmt.Errorf("clear scored words: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO training_runs(id, started_at, finished_at, sources, word_count, training_r2) VALUES(?,?,?,?,?,?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(sources),
		len(words),
		run.TrainingR2,
	); err != nil {
		return fmt.Errorf("insert training run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scored_words(word, difficulty, raw_score, run_id) VALUES(?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare word insert: %w", err)
	}
	defer stmt.Close()
	for _, w := range dataset.Rounded(words) {
		if _, err := stmt.Exec(w.Word, w.Difficulty, w.RawScore, run.ID); err != nil {
			return fmt.Errorf("insert word %q: %w", w.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Store serves the mirrored dataset to the game server.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the mirrored words. A missing database file is an error; it is
// never created on read.
func (s *Store) Load(ctx context.Context) (*dataset.Dataset, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	conn, err := Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT word, difficulty, raw_score FROM scored_words ORDER BY difficulty, word`)
	if err != nil {
		return nil, fmt.Errorf("query scored words: %w", err)
	}
	defer rows.Close()

	var words []dataset.ScoredWord
	for rows.Next() {
		var w dataset.ScoredWord
		if err := rows.Scan(&w.Word, &w.Difficulty, &w.RawScore); err != nil {
			return nil, fmt.Errorf("scan scored word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scored words: %w", err)
	}
	return dataset.New(words), nil
}

// LatestRunID returns the most recently finished run, or "" when none exist.
func LatestRunID(dbPath string) (string, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	var id string
	err = conn.QueryRow(`SELECT id FROM training_runs ORDER BY finished_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest run: %w", err)
	}
	return id, nil
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS training_runs (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    sources TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    training_r2 REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS scored_words (
    word TEXT PRIMARY KEY,
    difficulty REAL NOT NULL,
    raw_score REAL NOT NULL,
    run_id TEXT NOT NULL REFERENCES training_runs(id)
);

CREATE INDEX IF NOT EXISTS idx_scored_words_difficulty ON scored_words(difficulty);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

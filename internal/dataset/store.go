package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Rounded returns a copy of words at published precision: difficulty to
// three decimals, raw score to two. Every persisted form uses it.
func Rounded(words []ScoredWord) []ScoredWord {
	out := make([]ScoredWord, len(words))
	for i, sw := range words {
		out[i] = ScoredWord{
			Word:       sw.Word,
			Difficulty: round(sw.Difficulty, 3),
			RawScore:   round(sw.RawScore, 2),
		}
	}
	return out
}

// Export writes words as one indented JSON array at Rounded precision.
func Export(w io.Writer, words []ScoredWord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rounded(words)); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}

// Decode reads a JSON array of scored words. Entries with a blank word are
// dropped and difficulties are clamped into [0,1].
func Decode(r io.Reader) (*Dataset, error) {
	var raw []ScoredWord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	words := make([]ScoredWord, 0, len(raw))
	for _, sw := range raw {
		sw.Word = strings.TrimSpace(sw.Word)
		if sw.Word == "" {
			continue
		}
		sw.Difficulty = min(max(sw.Difficulty, 0), 1)
		words = append(words, sw)
	}
	return New(words), nil
}

// FileStore keeps the dataset as a JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save replaces the file atomically, so readers never observe a partially
// written dataset.
func (s *FileStore) Save(_ context.Context, words []ScoredWord) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".dataset-*.json")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Export(tmp, words); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("publish dataset: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (*Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return ds, nil
}

// round rounds half to even.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

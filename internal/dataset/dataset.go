package dataset

import (
	"context"
	"slices"
)

type ScoredWord struct {
	Word       string  `json:"word"`
	Difficulty float64 `json:"difficulty"`
	RawScore   float64 `json:"raw_score"`
}

// Loader is any source of a persisted scored-word dataset.
type Loader interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Dataset is an immutable, difficulty-ordered set of scored words. It is
// safe to share between goroutines.
type Dataset struct {
	words []ScoredWord
	index map[string]int
}

// New builds a Dataset. The first occurrence of a duplicated word wins and
// entries are ordered by difficulty, then word.
func New(words []ScoredWord) *Dataset {
	ds := &Dataset{
		words: make([]ScoredWord, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w.Word]; dup {
			continue
		}
		seen[w.Word] = struct{}{}
		ds.words = append(ds.words, w)
	}
	SortByDifficulty(ds.words)
	for i, w := range ds.words {
		ds.index[w.Word] = i
	}
	return ds
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a copy of the entries in difficulty order.
func (d *Dataset) Words() []ScoredWord {
	if d == nil {
		return nil
	}
	return slices.Clone(d.words)
}

func (d *Dataset) At(i int) ScoredWord { return d.words[i] }

// Lookup finds an entry by exact word match.
func (d *Dataset) Lookup(word string) (ScoredWord, bool) {
	if d == nil {
		return ScoredWord{}, false
	}
	i, ok := d.index[word]
	if !ok {
		return ScoredWord{}, false
	}
	return d.words[i], true
}

func SortByDifficulty(words []ScoredWord) {
	slices.SortStableFunc(words, func(a, b ScoredWord) int {
		switch {
		case a.Difficulty < b.Difficulty:
			return -1
		case a.Difficulty > b.Difficulty:
			return 1
		case a.Word < b.Word:
			return -1
		case a.Word > b.Word:
			return 1
		}
		return 0
	})
}

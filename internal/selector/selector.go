package selector

import (
	"math"
	"math/rand/v2"
	"strings"

	"wordpace/internal/dataset"
)

const (
	// MemoryTestChance is the probability of re-serving a seen word once the
	// history is long enough.
	MemoryTestChance = 0.30
	// MinHistoryForMemoryTest is the history length that must be exceeded
	// before memory tests are considered.
	MinHistoryForMemoryTest = 3

	baseTimeSeconds   = 3.0
	timePerDifficulty = 2.5
)

// RandomSource supplies the selector's random draws. Implementations must be
// safe for concurrent use.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource draws from the runtime's concurrency-safe generator.
func DefaultSource() RandomSource { return globalSource{} }

type SessionRequest struct {
	Mode      string
	SeenWords []string
}

type WordSelection struct {
	Word         string  `json:"word"`
	Difficulty   float64 `json:"difficulty"`
	TimeLimit    float64 `json:"time_limit"`
	IsMemoryTest bool    `json:"is_memory_test"`
}

// ParseSeen splits a comma-separated history. Blank entries are dropped.
func ParseSeen(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Selector picks the next word for a session. It keeps no state between
// calls; the same inputs differ only by the random draws.
type Selector struct {
	rnd RandomSource
}

func New(src RandomSource) *Selector {
	if src == nil {
		src = DefaultSource()
	}
	return &Selector{rnd: src}
}

func (s *Selector) Next(ds *dataset.Dataset, req SessionRequest) (WordSelection, error) {
	candidates, err := Filter(req.Mode, ds)
	if err != nil {
		return WordSelection{}, err
	}

	if n := len(req.SeenWords); n > MinHistoryForMemoryTest && s.rnd.Float64() < MemoryTestChance {
		target := req.SeenWords[s.rnd.IntN(n)]
		// A seen word missing from the current dataset falls through to a
		// fresh pick.
		if w, ok := ds.Lookup(target); ok {
			return selection(w, true), nil
		}
	}

	return selection(candidates[s.rnd.IntN(len(candidates))], false), nil
}

// TimeLimit is the response budget for a word: three seconds plus up to two
// and a half more for the hardest words, to one decimal. Ties round to even.
func TimeLimit(difficulty float64) float64 {
	return math.RoundToEven((baseTimeSeconds+difficulty*timePerDifficulty)*10) / 10
}

func selection(w dataset.ScoredWord, memory bool) WordSelection {
	return WordSelection{
		Word:         w.Word,
		Difficulty:   w.Difficulty,
		TimeLimit:    TimeLimit(w.Difficulty),
		IsMemoryTest: memory,
	}
}

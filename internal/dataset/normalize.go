package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DegenerateFallback is the difficulty given to every word when all raw
// predictions are identical.
const DegenerateFallback = 0.5

// DegenerateScoreRangeError describes a prediction set with zero spread. It
// never leaves this package as a failure; Normalize recovers from it.
type DegenerateScoreRangeError struct {
	Value float64
	Count int
}

func (e *DegenerateScoreRangeError) Error() string {
	return fmt.Sprintf("all %d raw scores equal %.4f", e.Count, e.Value)
}

// Normalize min-max scales raw scores into [0,1] and returns the scored words
// ordered by difficulty. When the range is degenerate every word gets
// DegenerateFallback and the recovered condition is returned for logging.
func Normalize(words []string, raw []float64) ([]ScoredWord, *DegenerateScoreRangeError, error) {
	if len(words) != len(raw) {
		return nil, nil, fmt.Errorf("normalize: %d words but %d scores", len(words), len(raw))
	}
	if len(words) == 0 {
		return []ScoredWord{}, nil, nil
	}

	lo, hi := floats.Min(raw), floats.Max(raw)
	var degenerate *DegenerateScoreRangeError
	if hi == lo {
		degenerate = &DegenerateScoreRangeError{Value: lo, Count: len(raw)}
	}

	out := make([]ScoredWord, len(words))
	for i, w := range words {
		d := DegenerateFallback
		if degenerate == nil {
			d = (raw[i] - lo) / (hi - lo)
		}
		out[i] = ScoredWord{Word: w, Difficulty: d, RawScore: raw[i]}
	}
	SortByDifficulty(out)
	return out, degenerate, nil
}

package selector

import (
	"errors"
	"strings"

	"wordpace/internal/dataset"
)

var ErrEmptyCorpus = errors.New("word dataset is empty")

type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeMedium Mode = "medium"
	ModeHard   Mode = "hard"
)

// Band is an inclusive difficulty range.
type Band struct {
	Min float64
	Max float64
}

func (b Band) Contains(d float64) bool { return d >= b.Min && d <= b.Max }

var bands = map[Mode]Band{
	ModeEasy:   {Min: 0.0, Max: 0.4},
	ModeMedium: {Min: 0.3, Max: 0.7},
	ModeHard:   {Min: 0.6, Max: 1.0},
}

// BandFor maps a free-text mode to its band; anything unrecognised gets the
// medium band.
func BandFor(mode string) Band {
	if b, ok := bands[Mode(strings.ToLower(strings.TrimSpace(mode)))]; ok {
		return b
	}
	return bands[ModeMedium]
}

// Filter returns the words inside the mode's band, or the whole dataset when
// the band is empty.
func Filter(mode string, ds *dataset.Dataset) ([]dataset.ScoredWord, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	band := BandFor(mode)
	all := ds.Words()
	out := make([]dataset.ScoredWord, 0, len(all))
	for _, w := range all {
		if band.Contains(w.Difficulty) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return all, nil
	}
	return out, nil
}

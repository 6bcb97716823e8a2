package features

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a word that cannot be turned into a feature vector.
type InvalidInputError struct {
	Word   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

const vowels = "aeiou"

var hardSuffixes = []string{"tion", "ing", "ogy", "ism"}

// Vector is the fixed lexical summary fed to the difficulty model.
type Vector struct {
	Length        int
	Syllables     int
	UniqueChars   int
	VowelRatio    float64
	HasHardSuffix bool
}

// Values returns the vector in model input order.
func (v Vector) Values() []float64 {
	suffix := 0.0
	if v.HasHardSuffix {
		suffix = 1
	}
	return []float64{
		float64(v.Length),
		float64(v.Syllables),
		float64(v.UniqueChars),
		v.VowelRatio,
		suffix,
	}
}

func Clean(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func Extract(word string) (Vector, error) {
	w := Clean(word)
	if w == "" {
		return Vector{}, &InvalidInputError{Word: word, Reason: "empty after trimming"}
	}

	unique := map[rune]struct{}{}
	for _, r := range w {
		unique[r] = struct{}{}
	}

	vowelCount := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			vowelCount++
		}
	}

	hard := false
	for _, s := range hardSuffixes {
		if strings.HasSuffix(w, s) {
			hard = true
			break
		}
	}

	return Vector{
		Length:        len(w),
		Syllables:     CountSyllables(w),
		UniqueChars:   len(unique),
		VowelRatio:    float64(vowelCount) / float64(len(w)),
		HasHardSuffix: hard,
	}, nil
}

// CountSyllables approximates syllables by counting vowel groups. It is a
// spelling heuristic, not a phonetic analysis: a trailing "e" is treated as
// silent and the result never drops below one.
func CountSyllables(word string) int {
	w := Clean(word)
	count := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) && (i == 0 || !isVowel(w[i-1])) {
			count++
		}
	}
	if strings.HasSuffix(w, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// ExtractAll extracts every word it can. Words that fail extraction are
// returned in rejected instead of aborting the batch.
func ExtractAll(words []string) (vectors []Vector, kept []string, rejected []error) {
	vectors = make([]Vector, 0, len(words))
	kept = make([]string, 0, len(words))
	for _, w := range words {
		v, err := Extract(w)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		vectors = append(vectors, v)
		kept = append(kept, Clean(w))
	}
	return vectors, kept, rejected
}

func isVowel(b byte) bool {
	return strings.IndexByte(vowels, b) >= 0
}

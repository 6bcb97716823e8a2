package features

import (
	"errors"
	"math"
	"testing"
)

func TestExtractCat(t *testing.T) {
	v, err := Extract("cat")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := Vector{Length: 3, Syllables: 1, UniqueChars: 3, VowelRatio: 1.0 / 3.0, HasHardSuffix: false}
	if v.Length != want.Length || v.Syllables != want.Syllables || v.UniqueChars != want.UniqueChars || v.HasHardSuffix != want.HasHardSuffix {
		t.Fatalf("expected %+v, got %+v", want, v)
	}
	if math.Abs(v.VowelRatio-want.VowelRatio) > 1e-12 {
		t.Fatalf("expected vowel ratio %.4f, got %.4f", want.VowelRatio, v.VowelRatio)
	}
}

func TestExtractCleansInput(t *testing.T) {
	v, err := Extract("  STATION ")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if v.Length != 7 {
		t.Fatalf("expected trimmed length 7, got %d", v.Length)
	}
	if !v.HasHardSuffix {
		t.Fatal("expected -tion to be a hard suffix")
	}
}

func TestExtractEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Extract(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", in, err)
		}
		var ie *InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("expected *InvalidInputError for %q", in)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"cat":           1,
		"apple":         1,
		"house":         1,
		"garden":        2,
		"philosophy":    3,
		"idiosyncratic": 4,
		"the":           1,
		"rhythm":        1,
		"e":             1,
		"banana":        3,
	}
	for word, want := range cases {
		if got := CountSyllables(word); got != want {
			t.Errorf("CountSyllables(%q) = %d, want %d", word, got, want)
		}
	}
}

func TestVectorInvariants(t *testing.T) {
	words := []string{"a", "e", "zzz", "queue", "strengths", "onomatopoeia", "biology", "mechanism", "x"}
	for _, w := range words {
		v, err := Extract(w)
		if err != nil {
			t.Fatalf("extract %q: %v", w, err)
		}
		if v.VowelRatio < 0 || v.VowelRatio > 1 {
			t.Fatalf("vowel ratio out of range for %q: %f", w, v.VowelRatio)
		}
		if v.Syllables < 1 {
			t.Fatalf("syllables below one for %q", w)
		}
		if len(v.Values()) != 5 {
			t.Fatalf("expected 5 values, got %d", len(v.Values()))
		}
	}
}

func TestExtractAllRejectsLocally(t *testing.T) {
	vectors, kept, rejected := ExtractAll([]string{"Planet", " ", "theory"})
	if len(vectors) != 2 || len(kept) != 2 {
		t.Fatalf("expected 2 kept words, got %d/%d", len(vectors), len(kept))
	}
	if kept[0] != "planet" {
		t.Fatalf("expected cleaned word, got %q", kept[0])
	}
	if len(rejected) != 1 || !errors.Is(rejected[0], ErrInvalidInput) {
		t.Fatalf("expected one invalid input rejection, got %v", rejected)
	}
}

package ingest

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"wordpace/internal/chunk"
	"wordpace/internal/pipeline"
)

// Candidate words are ASCII letters only, at least four long.
var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

type Options struct {
	Workers      int
	SegmentWords int
}

// Harvest returns the unique, lower-cased candidate words of text, sorted.
func Harvest(text string, opts Options) []string {
	segments := chunk.Split(text, opts.SegmentWords)
	tokens := pipeline.TokenizeSegments(segments, opts.Workers, func(seg chunk.Segment) []string {
		return tokenize(seg.Text)
	})
	return sortedKeys(tokens)
}

// HarvestFiles parses every path and returns the union of their candidate
// words. Any unreadable document aborts the harvest, and so does a set of
// documents that yields no words at all.
func HarvestFiles(paths []string, opts Options) ([]string, error) {
	if len(paths) == 0 {
		return nil, &CorpusReadError{Path: "<none>", Err: errors.New("no source documents given")}
	}

	union := map[string]struct{}{}
	for _, p := range paths {
		parsed, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		for _, w := range Harvest(parsed.Text, opts) {
			union[w] = struct{}{}
		}
	}

	if len(union) == 0 {
		return nil, &CorpusReadError{
			Path: strings.Join(paths, ","),
			Err:  errors.New("no words of four or more letters found"),
		}
	}
	return sortedKeys(union), nil
}

func tokenize(text string) []string {
	found := wordPattern.FindAllString(text, -1)
	for i, w := range found {
		found[i] = strings.ToLower(w)
	}
	return found
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

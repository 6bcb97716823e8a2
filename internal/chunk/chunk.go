package chunk

import "strings"

// DefaultSegmentWords keeps a page or two of text per tokenization job.
const DefaultSegmentWords = 2000

type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

// Split cuts text into consecutive, non-overlapping segments of at most
// segmentWords whitespace-separated tokens. Tokens are never split, so a word
// cannot straddle two segments.
func Split(text string, segmentWords int) []Segment {
	if segmentWords <= 0 {
		segmentWords = DefaultSegmentWords
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(tokens)/segmentWords+1)
	for start := 0; start < len(tokens); start += segmentWords {
		end := min(start+segmentWords, len(tokens))
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       strings.Join(tokens[start:end], " "),
		})
	}
	return segments
}

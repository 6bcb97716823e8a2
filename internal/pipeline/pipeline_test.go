package pipeline

import (
	"strings"
	"sync/atomic"
	"testing"

	"wordpace/internal/chunk"
)

func TestTokenizeSegments(t *testing.T) {
	segs := []chunk.Segment{
		{Index: 0, Text: "alpha beta"},
		{Index: 1, Text: "beta gamma"},
		{Index: 2, Text: "delta"},
	}

	var called int32
	tokens := TokenizeSegments(segs, 2, func(seg chunk.Segment) []string {
		atomic.AddInt32(&called, 1)
		return strings.Fields(seg.Text)
	})

	if called != int32(len(segs)) {
		t.Fatalf("expected %d calls, got %d", len(segs), called)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 unique tokens, got %d", len(tokens))
	}
	for _, want := range []string{"alpha", "beta", "gamma", "delta"} {
		if _, ok := tokens[want]; !ok {
			t.Fatalf("missing token %q", want)
		}
	}
}

func TestTokenizeSegmentsMoreWorkersThanSegments(t *testing.T) {
	segs := []chunk.Segment{{Index: 0, Text: "solo"}}
	tokens := TokenizeSegments(segs, 16, func(seg chunk.Segment) []string {
		return strings.Fields(seg.Text)
	})
	if _, ok := tokens["solo"]; !ok || len(tokens) != 1 {
		t.Fatalf("unexpected tokens %v", tokens)
	}
}

func TestTokenizeSegmentsEmpty(t *testing.T) {
	tokens := TokenizeSegments(nil, 4, func(chunk.Segment) []string {
		t.Fatal("tokenizer should not be called")
		return nil
	})
	if len(tokens) != 0 {
		t.Fatalf("expected empty result, got %v", tokens)
	}
}

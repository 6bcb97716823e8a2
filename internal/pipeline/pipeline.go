package pipeline

import (
	"runtime"
	"sync"

	"wordpace/internal/chunk"
)

type Tokenizer func(seg chunk.Segment) []string

// TokenizeSegments runs fn over segments on a bounded set of workers and
// returns the union of the tokens.
func TokenizeSegments(segments []chunk.Segment, workers int, fn Tokenizer) map[string]struct{} {
	tokens := map[string]struct{}{}
	if len(segments) == 0 || fn == nil {
		return tokens
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	workers = min(workers, len(segments))

	jobs := make(chan chunk.Segment)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seg := range jobs {
				found := fn(seg)
				mu.Lock()
				for _, tok := range found {
					tokens[tok] = struct{}{}
				}
				mu.Unlock()
			}
		}()
	}

	for _, seg := range segments {
		jobs <- seg
	}
	close(jobs)
	wg.Wait()

	return tokens
}

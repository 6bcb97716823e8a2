package regress

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat"

	"wordpace/internal/features"
)

var ErrTooFewExamples = errors.New("at least two labeled examples are required")

type Options struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	Seed            uint64
}

func DefaultOptions() Options {
	return Options{Trees: 100, MaxDepth: 5, MinSamplesSplit: 2, Seed: 42}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Trees <= 0 {
		o.Trees = d.Trees
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = d.MaxDepth
	}
	if o.MinSamplesSplit < 2 {
		o.MinSamplesSplit = d.MinSamplesSplit
	}
	return o
}

// Forest is a bagged ensemble of regression trees. It is immutable once Fit
// returns and safe for concurrent prediction.
type Forest struct {
	opts  Options
	trees []*node
}

type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
}

func (n *node) leaf() bool { return n.left == nil }

// Fit trains a forest on the lexical features of each example word, with the
// human score as target. Every tree sees a bootstrap sample of the examples.
func Fit(examples []LabeledExample, opts Options) (*Forest, error) {
	if len(examples) < 2 {
		return nil, ErrTooFewExamples
	}
	opts = opts.withDefaults()

	x := make([][]float64, len(examples))
	y := make([]float64, len(examples))
	for i, ex := range examples {
		v, err := features.Extract(ex.Word)
		if err != nil {
			return nil, fmt.Errorf("reference example %d: %w", i, err)
		}
		x[i] = v.Values()
		y[i] = ex.HumanScore
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	f := &Forest{opts: opts, trees: make([]*node, 0, opts.Trees)}
	for range opts.Trees {
		sample := make([]int, len(examples))
		for i := range sample {
			sample[i] = rng.IntN(len(examples))
		}
		f.trees = append(f.trees, grow(x, y, sample, 0, opts))
	}
	return f, nil
}

func (f *Forest) Trees() int { return len(f.trees) }

// Predict scores words through the same feature extraction used by Fit.
func (f *Forest) Predict(words []string) ([]float64, error) {
	out := make([]float64, len(words))
	for i, w := range words {
		v, err := features.Extract(w)
		if err != nil {
			return nil, err
		}
		out[i] = f.predictOne(v.Values())
	}
	return out, nil
}

func (f *Forest) PredictVectors(vs []features.Vector) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = f.predictOne(v.Values())
	}
	return out
}

// Score returns the coefficient of determination of the forest on examples.
func (f *Forest) Score(examples []LabeledExample) (float64, error) {
	words := make([]string, len(examples))
	targets := make([]float64, len(examples))
	for i, ex := range examples {
		words[i] = ex.Word
		targets[i] = ex.HumanScore
	}
	preds, err := f.Predict(words)
	if err != nil {
		return 0, err
	}
	return stat.RSquaredFrom(preds, targets, nil), nil
}

func (f *Forest) predictOne(x []float64) float64 {
	total := 0.0
	for _, t := range f.trees {
		n := t
		for !n.leaf() {
			if x[n.feature] <= n.threshold {
				n = n.left
			} else {
				n = n.right
			}
		}
		total += n.value
	}
	return total / float64(len(f.trees))
}

func grow(x [][]float64, y []float64, idx []int, depth int, opts Options) *node {
	targets := make([]float64, len(idx))
	for i, j := range idx {
		targets[i] = y[j]
	}
	n := &node{value: stat.Mean(targets, nil)}

	if depth >= opts.MaxDepth || len(idx) < opts.MinSamplesSplit || constant(targets) {
		return n
	}

	feature, threshold, ok := bestSplit(x, y, idx)
	if !ok {
		return n
	}

	var left, right []int
	for _, j := range idx {
		if x[j][feature] <= threshold {
			left = append(left, j)
		} else {
			right = append(right, j)
		}
	}

	n.feature = feature
	n.threshold = threshold
	n.left = grow(x, y, left, depth+1, opts)
	n.right = grow(x, y, right, depth+1, opts)
	return n
}

// bestSplit finds the feature and threshold minimising the summed squared
// error of the two children. Thresholds sit halfway between distinct values.
func bestSplit(x [][]float64, y []float64, idx []int) (feature int, threshold float64, ok bool) {
	bestSSE := 0.0
	order := slices.Clone(idx)

	for f := range x[idx[0]] {
		slices.SortStableFunc(order, func(a, b int) int {
			switch {
			case x[a][f] < x[b][f]:
				return -1
			case x[a][f] > x[b][f]:
				return 1
			}
			return 0
		})

		var totalSum, totalSq float64
		for _, j := range order {
			totalSum += y[j]
			totalSq += y[j] * y[j]
		}

		var leftSum, leftSq float64
		for i := 0; i < len(order)-1; i++ {
			j := order[i]
			leftSum += y[j]
			leftSq += y[j] * y[j]

			cur, next := x[j][f], x[order[i+1]][f]
			if cur == next {
				continue
			}

			nl := float64(i + 1)
			nr := float64(len(order)) - nl
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)

			if !ok || sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (cur + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func constant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}

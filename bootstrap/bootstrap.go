package bootstrap

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptySample is returned when the input sample has no elements.
	ErrEmptySample = errors.New("empty sample")
	// ErrBadIterations is returned when the iteration count is below 1.
	ErrBadIterations = errors.New("iterations must be >= 1")
)

// EstimateFunc produces a bootstrap distribution of the mean: the result has
// exactly iters entries, each the arithmetic mean of one resample of sample
// drawn uniformly with replacement. The sample is never mutated. A nil rng
// uses a time-seeded source.
type EstimateFunc func(sample []float64, iters int, rng *rand.Rand) ([]float64, error)

// Strategy pairs an estimator with its stable name. Balanced strategies
// guarantee that the grand mean of the result equals the sample mean exactly.
type Strategy struct {
	Name     string
	Balanced bool
	Estimate EstimateFunc
}

var registry = []Strategy{
	{"naive-loop", false, NaiveLoop},
	{"optimized-loop", false, OptimizedLoop},
	{"vectorized-loop", false, VectorizedLoop},
	{"batch-matrix", false, BatchMatrix},
	{"map-apply", false, MapApply},
	{"balanced-shuffle", true, BalancedShuffle},
	{"balanced-labels", true, BalancedLabels},
}

// Strategies returns all strategies in their canonical order.
func Strategies() []Strategy {
	return append([]Strategy(nil), registry...)
}

// Lookup resolves a strategy by name.
func Lookup(name string) (Strategy, error) {
	for _, st := range registry {
		if st.Name == name {
			return st, nil
		}
	}
	return Strategy{}, fmt.Errorf("unknown strategy %q", name)
}

func checkArgs(sample []float64, iters int) error {
	if len(sample) == 0 {
		return fmt.Errorf("bootstrap: %w", ErrEmptySample)
	}
	if iters < 1 {
		return fmt.Errorf("bootstrap: got %d: %w", iters, ErrBadIterations)
	}
	return nil
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// resampleInto fills dst with draws from sample, with replacement.
func resampleInto(dst, sample []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = sample[rng.Intn(len(sample))]
	}
}

// NaiveLoop grows the result one append at a time and computes each estimate
// with the general-purpose mean routine.
func NaiveLoop(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	buf := make([]float64, len(sample))
	var out []float64
	for i := 0; i < iters; i++ {
		resampleInto(buf, sample, rng)
		out = append(out, stat.Mean(buf, nil))
	}
	return out, nil
}

// OptimizedLoop is NaiveLoop with the mean replaced by an explicit
// sum-divided-by-count.
func OptimizedLoop(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := float64(len(sample))
	buf := make([]float64, len(sample))
	var out []float64
	for i := 0; i < iters; i++ {
		resampleInto(buf, sample, rng)
		out = append(out, floats.Sum(buf)/n)
	}
	return out, nil
}

// VectorizedLoop is OptimizedLoop with the result preallocated to its final
// size instead of grown per iteration.
func VectorizedLoop(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := float64(len(sample))
	buf := make([]float64, len(sample))
	out := make([]float64, iters)
	for i := range out {
		resampleInto(buf, sample, rng)
		out[i] = floats.Sum(buf) / n
	}
	return out, nil
}

// BatchMatrix draws every resample up front into a single dense matrix
// (rows = sample positions, columns = resamples) and then takes column means
// in one pass.
func BatchMatrix(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := len(sample)
	draws := mat.NewDense(n, iters, nil)
	for j := 0; j < iters; j++ {
		for i := 0; i < n; i++ {
			draws.Set(i, j, sample[rng.Intn(n)])
		}
	}
	out := make([]float64, iters)
	col := make([]float64, n)
	for j := 0; j < iters; j++ {
		mat.Col(col, j, draws)
		out[j] = floats.Sum(col) / float64(n)
	}
	return out, nil
}

// MapApply expresses the loop as a closure applied across iters independent
// invocations.
func MapApply(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := float64(len(sample))
	buf := make([]float64, len(sample))
	return applyN(iters, func(int) float64 {
		resampleInto(buf, sample, rng)
		return floats.Sum(buf) / n
	}), nil
}

// applyN maps f over the index range [0, n).
func applyN(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

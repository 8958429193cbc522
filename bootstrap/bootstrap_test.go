package bootstrap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestStrategies_RegistryOrder(t *testing.T) {
	want := []string{
		"naive-loop",
		"optimized-loop",
		"vectorized-loop",
		"batch-matrix",
		"map-apply",
		"balanced-shuffle",
		"balanced-labels",
	}
	got := Strategies()
	require.Len(t, got, len(want))
	for i, st := range got {
		assert.Equal(t, want[i], st.Name)
		assert.NotNil(t, st.Estimate)
	}
}

func TestLookup(t *testing.T) {
	st, err := Lookup("balanced-shuffle")
	require.NoError(t, err)
	assert.Equal(t, "balanced-shuffle", st.Name)
	assert.True(t, st.Balanced)

	_, err = Lookup("jackknife")
	assert.Error(t, err)
}

func TestAllStrategies_LengthAndRange(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5}
	const iters = 1000

	for _, st := range Strategies() {
		t.Run(st.Name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			out, err := st.Estimate(sample, iters, rng)
			require.NoError(t, err)
			require.Len(t, out, iters)

			// A mean of resampled elements cannot leave the sample's range.
			lo, hi := floats.Min(sample), floats.Max(sample)
			for _, v := range out {
				require.GreaterOrEqual(t, v, lo)
				require.LessOrEqual(t, v, hi)
			}
		})
	}
}

func TestAllStrategies_SingleElementSample(t *testing.T) {
	sample := []float64{5.0}
	for _, st := range Strategies() {
		t.Run(st.Name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			out, err := st.Estimate(sample, 10, rng)
			require.NoError(t, err)
			require.Len(t, out, 10)
			for _, v := range out {
				assert.Equal(t, 5.0, v)
			}
		})
	}
}

func TestAllStrategies_InvalidArgs(t *testing.T) {
	for _, st := range Strategies() {
		t.Run(st.Name, func(t *testing.T) {
			_, err := st.Estimate(nil, 10, nil)
			assert.ErrorIs(t, err, ErrEmptySample)

			_, err = st.Estimate([]float64{1, 2}, 0, nil)
			assert.ErrorIs(t, err, ErrBadIterations)

			_, err = st.Estimate([]float64{1, 2}, -3, nil)
			assert.ErrorIs(t, err, ErrBadIterations)
		})
	}
}

func TestUnbalancedStrategies_GrandMeanConverges(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5} // mean 3.0
	const iters = 2000

	for _, st := range Strategies() {
		if st.Balanced {
			continue
		}
		t.Run(st.Name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			out, err := st.Estimate(sample, iters, rng)
			require.NoError(t, err)
			assert.InDelta(t, 3.0, stat.Mean(out, nil), 0.2)
		})
	}
}

func TestAllStrategies_ReproducibleWithSeed(t *testing.T) {
	sample := []float64{2.5, -1.0, 0.0, 7.25, 3.5, 3.5}
	for _, st := range Strategies() {
		t.Run(st.Name, func(t *testing.T) {
			a, err := st.Estimate(sample, 200, rand.New(rand.NewSource(7)))
			require.NoError(t, err)
			b, err := st.Estimate(sample, 200, rand.New(rand.NewSource(7)))
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestAllStrategies_SampleNotMutated(t *testing.T) {
	sample := []float64{9, 8, 7, 6, 5, 4}
	orig := append([]float64(nil), sample...)
	for _, st := range Strategies() {
		_, err := st.Estimate(sample, 100, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, orig, sample, "strategy %s mutated the sample", st.Name)
	}
}

func TestNilRNGDefaults(t *testing.T) {
	out, err := VectorizedLoop([]float64{1, 2, 3}, 50, nil)
	require.NoError(t, err)
	assert.Len(t, out, 50)
}

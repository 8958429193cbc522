package bootstrap

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// BalancedShuffle replicates the sample iters times into one pool, shuffles
// the pool globally, and takes the mean of each consecutive group of
// len(sample) elements. The pooled multiset is fixed, so the grand mean over
// all groups equals the sample mean exactly.
func BalancedShuffle(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := len(sample)
	pool := make([]float64, 0, n*iters)
	for i := 0; i < iters; i++ {
		pool = append(pool, sample...)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	out := make([]float64, iters)
	for g := range out {
		out[g] = floats.Sum(pool[g*n:(g+1)*n]) / float64(n)
	}
	return out, nil
}

// BalancedLabels reaches the same guarantee as BalancedShuffle through a
// different construction: the pooled replication stays in order, and a
// shuffled balanced label vector assigns each pooled element to a group.
// Every label occurs exactly len(sample) times, so each group averages over
// the same count.
func BalancedLabels(sample []float64, iters int, rng *rand.Rand) ([]float64, error) {
	if err := checkArgs(sample, iters); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	n := len(sample)
	labels := make([]int, n*iters)
	for i := range labels {
		labels[i] = i % iters
	}
	rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})
	sums := make([]float64, iters)
	for i, g := range labels {
		sums[g] += sample[i%n]
	}
	out := make([]float64, iters)
	for g := range out {
		out[g] = sums[g] / float64(n)
	}
	return out, nil
}

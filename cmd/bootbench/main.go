// bootbench: compares bootstrap resampling strategies on one sample.
//
// Usage:
//
//	bootbench --n=500 --iters=10000 --dist=normal --seed=42 --out=results.csv
package main

import (
	"flag"
	"fmt"
	"os"

	"bootbench/bench"
	"bootbench/bootstrap"
	"bootbench/stats"
	"bootbench/utils"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	sampleSize    = flag.Int("n", 500, "Sample size")
	iters         = flag.Int("iters", 10000, "Bootstrap iterations per strategy")
	seed          = flag.Int64("seed", 42, "Random seed (negative for time-based)")
	strategiesCSV = flag.String("strategies", "", "Comma-separated strategy names (default: all)")
	dist          = flag.String("dist", "normal", "Sample distribution: normal, uniform")
	outPath       = flag.String("out", "", "Output CSV path (optional)")
	verbose       = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	config := &utils.Config{
		SampleSize: *sampleSize,
		Iterations: *iters,
		Seed:       *seed,
		Strategies: utils.ParseStrategies(*strategiesCSV),
		Dist:       *dist,
	}
	if err := utils.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	strategies, err := selectStrategies(config.Strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sample := generateSample(config.Dist, config.SampleSize, config.Seed)

	if utils.Verbose {
		fmt.Fprintf(utils.Output, "Configuration:\n")
		fmt.Fprintf(utils.Output, "  Sample size: %d (%s)\n", config.SampleSize, config.Dist)
		fmt.Fprintf(utils.Output, "  Iterations:  %d\n", config.Iterations)
		fmt.Fprintf(utils.Output, "  Seed:        %d\n", config.Seed)
		fmt.Fprintf(utils.Output, "  Strategies:  %d\n\n", len(strategies))
	}

	results, err := bench.Run(sample, config.Iterations, strategies, config.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if utils.Verbose {
		stats.Describe(sample).Fprint(utils.Output, "sample")
		fmt.Fprintln(utils.Output)
		for _, r := range results {
			stats.Describe(r.Estimates).Fprint(utils.Output, r.Record.Strategy)
		}
		fmt.Fprintln(utils.Output)
	}

	bench.WriteTable(utils.Output, results)

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := bench.WriteCSV(f, results); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		if utils.Verbose {
			fmt.Fprintf(utils.Output, "\nTiming records written to %s\n", *outPath)
		}
	}
}

// selectStrategies resolves names against the registry; an empty list selects
// every strategy in canonical order.
func selectStrategies(names []string) ([]bootstrap.Strategy, error) {
	if len(names) == 0 {
		return bootstrap.Strategies(), nil
	}
	out := make([]bootstrap.Strategy, 0, len(names))
	for _, name := range names {
		st, err := bootstrap.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// generateSample draws n values from the requested distribution. A negative
// seed falls back to the distribution's default source.
func generateSample(dist string, n int, seed int64) []float64 {
	var src exprand.Source
	if seed >= 0 {
		src = exprand.NewSource(uint64(seed))
	}
	xs := make([]float64, n)
	switch dist {
	case "uniform":
		d := distuv.Uniform{Min: 0, Max: 1, Src: src}
		for i := range xs {
			xs[i] = d.Rand()
		}
	default:
		d := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		for i := range xs {
			xs[i] = d.Rand()
		}
	}
	return xs
}

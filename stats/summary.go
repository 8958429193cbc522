package stats

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a bootstrap distribution.
type Summary struct {
	N      int
	Mean   float64
	StdErr float64 // standard deviation of the estimates = bootstrap SE of the mean
	Min    float64
	Max    float64
	Q025   float64
	Median float64
	Q975   float64
}

// Describe computes summary statistics over xs. The input is not modified;
// order statistics are taken on a sorted copy.
func Describe(xs []float64) Summary {
	s := Summary{N: len(xs)}
	if s.N == 0 {
		return s
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s.Mean = stat.Mean(sorted, nil)
	if s.N > 1 {
		s.StdErr = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q025 = stat.Quantile(0.025, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Q975 = stat.Quantile(0.975, stat.Empirical, sorted, nil)
	return s
}

// Interval returns the 95% percentile confidence bounds.
func (s Summary) Interval() (lo, hi float64) {
	return s.Q025, s.Q975
}

// Fprint writes a labeled summary block to w.
func (s Summary) Fprint(w io.Writer, label string) {
	fmt.Fprintf(w, "%s: n=%d\n", label, s.N)
	fmt.Fprintf(w, "  mean:   %.6f (se %.6f)\n", s.Mean, s.StdErr)
	fmt.Fprintf(w, "  range:  [%.6f, %.6f]\n", s.Min, s.Max)
	fmt.Fprintf(w, "  95%% CI: [%.6f, %.6f] (median %.6f)\n", s.Q025, s.Q975, s.Median)
}

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"bootbench/bootstrap"
	"bootbench/utils"
)

// Record associates one strategy invocation with its measured cost. User and
// Sys are process CPU time deltas; they are zero on platforms without rusage.
type Record struct {
	Strategy string
	Wall     time.Duration
	User     time.Duration
	Sys      time.Duration
}

// Result is one harness entry: the timing record plus the strategy's
// unaltered output.
type Result struct {
	Record    Record
	Estimates []float64
}

// Run invokes each strategy once, in order, with the same sample and
// iteration count, and returns one Result per strategy in invocation order.
// Each strategy gets a fresh source seeded from seed so runs are reproducible;
// seed < 0 leaves seeding to the strategy (time-based). The sample is passed
// through read-only.
func Run(sample []float64, iters int, strategies []bootstrap.Strategy, seed int64) ([]Result, error) {
	results := make([]Result, 0, len(strategies))
	for _, st := range strategies {
		var rng *rand.Rand
		if seed >= 0 {
			rng = rand.New(rand.NewSource(seed))
		}
		before := cpuTimes()
		start := time.Now()
		est, err := st.Estimate(sample, iters, rng)
		wall := time.Since(start)
		after := cpuTimes()
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", st.Name, err)
		}
		results = append(results, Result{
			Record: Record{
				Strategy: st.Name,
				Wall:     wall,
				User:     after.user - before.user,
				Sys:      after.sys - before.sys,
			},
			Estimates: est,
		})
	}
	return results, nil
}

// WriteTable prints the timing records as an aligned table.
func WriteTable(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-18s | %-12s | %-12s | %-12s\n", "Strategy", "Wall", "User CPU", "Sys CPU")
	for _, r := range results {
		fmt.Fprintf(w, "%-18s | %-12v | %-12v | %-12v\n",
			r.Record.Strategy, r.Record.Wall, r.Record.User, r.Record.Sys)
	}
}

// WriteCSV writes one row per timing record, durations in microseconds.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"strategy", "wall_us", "user_us", "sys_us"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Record.Strategy,
			strconv.FormatFloat(utils.DurationUS(r.Record.Wall), 'f', 3, 64),
			strconv.FormatFloat(utils.DurationUS(r.Record.User), 'f', 3, 64),
			strconv.FormatFloat(utils.DurationUS(r.Record.Sys), 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

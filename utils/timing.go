package utils

import (
	"io"
	"os"
	"time"
)

// Verbose controls whether summaries and timing tables are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where reports are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}

//go:build !unix

package bench

import "time"

type cpuSample struct {
	user, sys time.Duration
}

// cpuTimes returns zero on platforms without rusage; Records keep wall-clock
// timing only.
func cpuTimes() cpuSample {
	return cpuSample{}
}

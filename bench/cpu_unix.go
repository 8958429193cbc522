//go:build unix

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

type cpuSample struct {
	user, sys time.Duration
}

func cpuTimes() cpuSample {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return cpuSample{}
	}
	return cpuSample{
		user: time.Duration(ru.Utime.Nano()),
		sys:  time.Duration(ru.Stime.Nano()),
	}
}

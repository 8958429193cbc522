package utils

import (
	"fmt"
	"strings"
)

// Config holds one benchmark run configuration
type Config struct {
	SampleSize int
	Iterations int
	Seed       int64 // negative means time-based seeding
	Strategies []string
	Dist       string
}

// ParseStrategies parses a comma-separated strategy list; empty input selects
// all strategies.
func ParseStrategies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ValidateConfig validates a benchmark run configuration
func ValidateConfig(config *Config) error {
	if config.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive")
	}

	if config.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}

	if config.Dist != "normal" && config.Dist != "uniform" {
		return fmt.Errorf("dist must be 'normal' or 'uniform'")
	}

	return nil
}

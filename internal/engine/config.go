// Package engine normalizes raw usage events into merged per-application
// intervals and derives daily statistics. It is a pure transform: no I/O,
// no shared state, deterministic for a given input.
package engine

import (
	"fmt"
	"time"
)

const (
	DefaultGapTolerance = 3 * time.Minute
	DefaultMinAppUsage  = 2 * time.Minute
	DefaultMinIdleGap   = 15 * time.Minute
	DefaultPadding      = 30 * time.Minute
)

// Config carries all thresholds used by the engine. It is validated once at
// load time and passed by reference into each call; the engine itself never
// mutates it.
type Config struct {
	// DefaultGapTolerance is the maximum gap between two events of the same
	// application for them to be coalesced into one interval.
	DefaultGapTolerance time.Duration

	// GapToleranceOverrides maps an application id to its own tolerance,
	// e.g. meeting apps where short drops are normal.
	GapToleranceOverrides map[string]time.Duration

	// MinAppUsage is the minimum total duration for an application to appear
	// in the filtered output at all.
	MinAppUsage time.Duration

	// MinIdleWindow is the minimum length of a gap in the global timeline to
	// be reported as an idle window.
	MinIdleWindow time.Duration

	// WindowPadding extends the observation window beyond the first and last
	// event.
	WindowPadding time.Duration
}

func DefaultConfig() Config {
	return Config{
		DefaultGapTolerance: DefaultGapTolerance,
		MinAppUsage:         DefaultMinAppUsage,
		MinIdleWindow:       DefaultMinIdleGap,
		WindowPadding:       DefaultPadding,
	}
}

func (c *Config) Validate() error {
	if c.DefaultGapTolerance < 0 {
		return fmt.Errorf("gap tolerance must not be negative, got %s", c.DefaultGapTolerance)
	}
	for appID, tolerance := range c.GapToleranceOverrides {
		if appID == "" {
			return fmt.Errorf("gap tolerance override with empty app id")
		}
		if tolerance < 0 {
			return fmt.Errorf("gap tolerance override for %s must not be negative, got %s", appID, tolerance)
		}
	}
	if c.MinAppUsage < 0 {
		return fmt.Errorf("minimum app usage must not be negative, got %s", c.MinAppUsage)
	}
	if c.MinIdleWindow <= 0 {
		return fmt.Errorf("minimum idle window must be positive, got %s", c.MinIdleWindow)
	}
	if c.WindowPadding < 0 {
		return fmt.Errorf("window padding must not be negative, got %s", c.WindowPadding)
	}
	return nil
}

// ToleranceFor returns the gap tolerance for the given application.
func (c *Config) ToleranceFor(appID string) time.Duration {
	if tolerance, ok := c.GapToleranceOverrides[appID]; ok {
		return tolerance
	}
	return c.DefaultGapTolerance
}

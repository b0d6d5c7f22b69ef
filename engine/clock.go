package engine

import "time"

// TimeProvider is the game loop's only source of wall-clock time
type TimeProvider interface {
	Now() time.Time
}

// RealTime reads the system clock
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to, for driving ticks in tests
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock stopped at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

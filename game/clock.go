package game

import (
	"math"
	"sync"
	"time"
)

// Clock is the host's monotonic time source. Countdowns, particle
// lifetimes and deferred callbacks read it; simulated motion uses dt.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a controllable clock for tests and headless replays.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// FrameTimer measures the wall time between host frames. The first Tick
// returns 0 so start-up work is not simulated or mistaken for a slow frame.
type FrameTimer struct {
	last time.Time
}

// Tick records now and returns the time since the previous Tick.
func (f *FrameTimer) Tick(now time.Time) time.Duration {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	elapsed := now.Sub(f.last)
	f.last = now
	return elapsed
}

// ClampDelta converts a frame duration to seconds, capped at max.
// Negative or non-finite input yields 0.
func ClampDelta(elapsed, max time.Duration) float64 {
	if elapsed > max {
		elapsed = max
	}
	dt := elapsed.Seconds()
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	return dt
}

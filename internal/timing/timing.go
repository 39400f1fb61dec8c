// Package timing provides the wall-clock abstractions used by frame-polled
// animation: a swappable Clock and a Timer that reports when a phase is over.
package timing

import "time"

// Clock reports the current time. The game loop samples it once per frame.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Used by tests and by
// anything that needs deterministic phase timing.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Timer is a started phase with a fixed duration.
// The zero Timer is not running.
type Timer struct {
	Start    time.Time
	Duration time.Duration
	running  bool
}

// NewTimer returns a running timer that began at start.
func NewTimer(start time.Time, d time.Duration) Timer {
	return Timer{Start: start, Duration: d, running: true}
}

// Running reports whether the timer has been started and not stopped.
func (t Timer) Running() bool { return t.running }

// Stop marks the timer as no longer running.
func (t *Timer) Stop() { t.running = false }

// Since returns how long the timer has been running at now.
func (t Timer) Since(now time.Time) time.Duration {
	if !t.running {
		return 0
	}
	return now.Sub(t.Start)
}

// Elapsed reports whether at least Duration has passed since Start.
// A stopped timer is never elapsed.
func (t Timer) Elapsed(now time.Time) bool {
	return t.running && t.Since(now) >= t.Duration
}

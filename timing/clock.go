// Package timing provides the fixed-step game clock and the per-entity task
// scheduler the simulation runs on.
package timing

import "time"

// TimeProvider reports the current game time as elapsed time since the match
// started.
type TimeProvider interface {
	Now() time.Duration
}

// Clock is pausable game time. It only moves when Advance is called, so the
// same sequence of steps always produces the same timestamps.
type Clock struct {
	now    time.Duration
	paused bool

	totalPaused time.Duration
}

func NewClock() *Clock {
	return &Clock{}
}

// Now returns current game time (frozen while paused).
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves game time forward by dt. While paused the step is counted as
// paused time instead.
func (c *Clock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if c.paused {
		c.totalPaused += dt
		return
	}
	c.now += dt
}

// Set jumps to an absolute game time. Intended for tests.
func (c *Clock) Set(t time.Duration) {
	c.now = t
}

func (c *Clock) Pause() {
	c.paused = true
}

func (c *Clock) Resume() {
	c.paused = false
}

func (c *Clock) IsPaused() bool {
	return c.paused
}

// TotalPaused returns the cumulative time stepped while paused.
func (c *Clock) TotalPaused() time.Duration {
	return c.totalPaused
}

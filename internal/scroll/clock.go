package scroll

import "time"

// Clock supplies the time elapsed since the previous tick.
type Clock interface {
	Delta() time.Duration
}

// FrameClock measures wall time between calls. The first call returns 0.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock returns a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Delta returns the time since the last call.
func (c *FrameClock) Delta() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// FixedClock reports the same interval every tick. Useful for deterministic
// replays and tests.
type FixedClock struct {
	Interval time.Duration
}

// NewFixedClock returns a clock ticking tickRate times per second.
// Non-positive rates default to 60.
func NewFixedClock(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock{Interval: time.Second / time.Duration(tickRate)}
}

// Delta returns the fixed interval.
func (c FixedClock) Delta() time.Duration {
	return c.Interval
}

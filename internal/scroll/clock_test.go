package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	now := time.Unix(1000, 0)
	c := &FrameClock{now: func() time.Time { return now }}

	assert.Zero(t, c.Delta(), "first call has nothing to measure against")

	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, c.Delta())

	now = now.Add(-time.Second)
	assert.Zero(t, c.Delta(), "clock going backwards is clamped")
}

func TestFixedClock(t *testing.T) {
	assert.Equal(t, time.Second/60, NewFixedClock(60).Delta())
	assert.Equal(t, time.Second/60, NewFixedClock(0).Delta())
	assert.Equal(t, 100*time.Millisecond, NewFixedClock(10).Delta())
}

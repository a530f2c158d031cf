package scroll

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SpeedCurve turns the base speed into the effective speed after a given
// amount of scrolling time.
type SpeedCurve interface {
	Speed(base float64, elapsed time.Duration) float64
}

// Config is resolved once when the scroller is created.
type Config struct {
	Direction Direction
	Variants  []string
	Speed     float64 // world units per second

	// Reskin destroys and recreates recycled tiles with a freshly selected
	// variant. When false the offscreen tile is only repositioned.
	Reskin bool

	Factory  Factory
	Selector Selector
	Geometry Geometry
	Clock    Clock      // used by Update; defaults to a FrameClock
	Curve    SpeedCurve // optional
}

// Stats accumulates over the scroller's lifetime.
type Stats struct {
	Ticks    int
	Recycles int
	Failures int
	Distance float64
	Elapsed  time.Duration
}

// Scroller is the recycling scheduler. It is not safe for concurrent use;
// the host's frame loop is expected to be its only caller.
type Scroller struct {
	axis   Axis
	bounds float64
	pool   *Pool
	speed  float64
	reskin bool
	clock  Clock
	curve  SpeedCurve
	paused bool
	stats  Stats
}

// New validates cfg, measures the tile extent and creates the initial
// PoolSize tiles. Configuration problems are reported before any tile is
// created.
func New(cfg Config) (*Scroller, error) {
	if len(cfg.Variants) == 0 {
		return nil, configErr(ErrNoVariants)
	}
	if cfg.Factory == nil {
		return nil, configErr(ErrNoFactory)
	}
	if !cfg.Direction.Valid() {
		return nil, configErr(fmt.Errorf("%w: %v", ErrUnknownDirection, cfg.Direction))
	}
	if err := checkSpeed(cfg.Speed); err != nil {
		return nil, configErr(err)
	}

	axis := Resolve(cfg.Direction)
	bounds, err := ScreenBounds(cfg.Geometry, axis)
	if err != nil {
		return nil, err
	}

	pool, err := NewPool(cfg.Factory, cfg.Selector, cfg.Variants, axis)
	if err != nil {
		return nil, err
	}

	for i := 0; i < PoolSize; i++ {
		t, err := pool.Create()
		if err != nil {
			pool.Close()
			return nil, err
		}
		t.Pos = InitialOffset(axis, i, pool.Extent())
		pool.Assign(i, t)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = NewFrameClock()
	}

	return &Scroller{
		axis:   axis,
		bounds: bounds,
		pool:   pool,
		speed:  cfg.Speed,
		reskin: cfg.Reskin,
		clock:  clock,
		curve:  cfg.Curve,
	}, nil
}

// Update advances by the clock's delta.
func (s *Scroller) Update() error {
	return s.Step(s.clock.Delta().Seconds())
}

// Step advances every tile by speed*dt (dt in seconds), then recycles the
// tiles that are past the threshold in ascending slot order. Each recycle
// sees the pool as left by the previous one.
//
// Factory failures do not stop the tick: the failed slot keeps its tile and
// is retried next tick, and all failures are returned joined.
func (s *Scroller) Step(dt float64) error {
	if s.paused {
		return nil
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	speed := s.Speed()
	s.pool.Translate(s.axis.Vector.Scale(speed * dt))
	s.stats.Ticks++
	s.stats.Distance += speed * dt
	s.stats.Elapsed += time.Duration(dt * float64(time.Second))

	threshold := Threshold(s.bounds, s.pool.Extent())
	var offscreen []int
	s.pool.Each(func(i int, t Tile) {
		if s.axis.Offscreen(t.Pos, threshold) {
			offscreen = append(offscreen, i)
		}
	})

	var errs []error
	for _, i := range offscreen {
		if err := s.recycle(i); err != nil {
			s.stats.Failures++
			errs = append(errs, err)
			continue
		}
		s.stats.Recycles++
	}
	return errors.Join(errs...)
}

// recycle seats a tile one extent beyond the current lead. The replacement
// is acquired before the old handle is released so a factory failure leaves
// the slot untouched.
func (s *Scroller) recycle(i int) error {
	seat, ok := RecycledSeat(s.pool, i)
	if !ok {
		seat = InitialOffset(s.axis, PoolSize-1, s.pool.Extent())
	}

	if !s.reskin {
		return s.pool.SetPos(i, seat)
	}

	t, err := s.pool.Create()
	if err != nil {
		var re *ResourceError
		if errors.As(err, &re) {
			re.Slot = i
		}
		return err
	}
	t.Pos = seat
	return s.pool.Replace(i, t)
}

// Speed is the effective speed for the next tick.
func (s *Scroller) Speed() float64 {
	if s.curve == nil {
		return s.speed
	}
	return s.curve.Speed(s.speed, s.stats.Elapsed)
}

// BaseSpeed is the configured speed before any curve is applied.
func (s *Scroller) BaseSpeed() float64 {
	return s.speed
}

// SetSpeed changes the base speed. Negative or non-finite values are rejected.
func (s *Scroller) SetSpeed(v float64) error {
	if err := checkSpeed(v); err != nil {
		return fmt.Errorf("scroll: %w", err)
	}
	s.speed = v
	return nil
}

// Pause stops translation and recycling until Resume.
func (s *Scroller) Pause() {
	s.paused = true
}

// Resume restarts scrolling. Update keeps draining the clock while paused,
// so resuming does not produce a jump.
func (s *Scroller) Resume() {
	s.paused = false
}

// Paused reports whether scrolling is paused.
func (s *Scroller) Paused() bool {
	return s.paused
}

// Tiles returns a snapshot of the active tiles in slot order.
func (s *Scroller) Tiles() []Tile {
	tiles := make([]Tile, 0, PoolSize)
	s.pool.Each(func(_ int, t Tile) {
		tiles = append(tiles, t)
	})
	return tiles
}

func (s *Scroller) Axis() Axis            { return s.axis }
func (s *Scroller) ScreenBounds() float64 { return s.bounds }
func (s *Scroller) Extent() float64       { return s.pool.Extent() }
func (s *Scroller) Stats() Stats          { return s.stats }

// Close releases all host-side tiles. The scroller must not be used after.
func (s *Scroller) Close() {
	s.pool.Close()
}

func checkSpeed(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrBadSpeed, v)
	}
	return nil
}

package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/scroll"
)

// speedStep is the factor applied by the faster/slower actions.
const speedStep = 1.25

var arrows = map[scroll.Direction]string{
	scroll.Up:    "↑",
	scroll.Down:  "↓",
	scroll.Left:  "←",
	scroll.Right: "→",
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock replaces the wall-time frame clock, e.g. with a scroll.FixedClock.
func WithClock(c scroll.Clock) Option {
	return func(s *Scene) {
		s.clock = c
	}
}

// WithPreset applies a speed preset on top of the scene config.
func WithPreset(p config.SpeedPreset) Option {
	return func(s *Scene) {
		s.preset = p
	}
}

// Scene is a configured scroller bound to a terminal screen.
type Scene struct {
	id       string
	cfg      config.SceneConfig
	preset   config.SpeedPreset
	variants []*Variant
	names    []string

	runtime  core.RuntimeConfig
	dir      scroll.Direction
	speed    float64 // base speed, survives rebuilds
	clock    scroll.Clock
	ramp     *config.Ramp
	factory  *Factory
	scroller *scroll.Scroller

	// wrapFactory decorates the tile factory handed to the scroller.
	wrapFactory func(*Factory) scroll.Factory

	carried scroll.Stats // stats of scrollers replaced by rebuilds
	lastErr error
}

// New creates a scene from config. Reset must be called before Step.
func New(id string, cfg config.SceneConfig, opts ...Option) (*Scene, error) {
	dir, err := scroll.ParseDirection(cfg.Scroll.Direction)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", id, err)
	}

	s := &Scene{
		id:  id,
		cfg: cfg,
		dir: dir,
	}
	for _, opt := range opts {
		opt(s)
	}
	config.ApplySpeedPreset(&s.cfg, s.preset)
	s.speed = s.cfg.Scroll.Speed

	for _, vc := range s.cfg.Variants {
		v, err := NewVariant(vc)
		if err != nil {
			return nil, err
		}
		s.variants = append(s.variants, v)
		s.names = append(s.names, v.Name)
	}

	if s.clock == nil {
		s.clock = scroll.NewFrameClock()
	}
	return s, nil
}

// ID returns the scene identifier used on the command line.
func (s *Scene) ID() string {
	return s.id
}

// Title returns the display name.
func (s *Scene) Title() string {
	if s.cfg.Title != "" {
		return s.cfg.Title
	}
	return s.id
}

// Direction returns the current scroll direction.
func (s *Scene) Direction() scroll.Direction {
	return s.dir
}

// Reset (re)creates the scroller for the given screen. Counters start over.
func (s *Scene) Reset(runtime core.RuntimeConfig) error {
	s.Close()
	s.carried = scroll.Stats{}
	s.lastErr = nil
	s.ramp = config.NewRamp(s.cfg.Ramp)
	return s.rebuild(runtime)
}

// Resize recreates the scroller for a new screen size, keeping counters.
func (s *Scene) Resize(runtime core.RuntimeConfig) error {
	if s.ramp == nil {
		return s.Reset(runtime)
	}
	return s.rebuild(runtime)
}

// rebuild replaces the scroller, keeping the accumulated stats. The scroller
// resolves direction and viewport once, so both changes go through here.
func (s *Scene) rebuild(runtime core.RuntimeConfig) error {
	paused := false
	if s.scroller != nil {
		paused = s.scroller.Paused()
		st := s.scroller.Stats()
		s.carried.Ticks += st.Ticks
		s.carried.Recycles += st.Recycles
		s.carried.Failures += st.Failures
		s.carried.Distance += st.Distance
		s.carried.Elapsed += st.Elapsed
		s.scroller.Close()
		s.scroller = nil
	}

	s.runtime = runtime
	s.factory = NewFactory(s.variants, runtime.ScreenW, runtime.ScreenH)
	var tiles scroll.Factory = s.factory
	if s.wrapFactory != nil {
		tiles = s.wrapFactory(s.factory)
	}

	sc, err := scroll.New(scroll.Config{
		Direction: s.dir,
		Variants:  s.names,
		Speed:     s.speed,
		Reskin:    s.cfg.Scroll.Reskin,
		Factory:   tiles,
		Selector:  NewRandomSelector(runtime.Seed),
		Geometry:  Camera{Width: runtime.ScreenW, Height: runtime.ScreenH},
		Clock:     s.clock,
		Curve:     rampFrom(s.ramp, s.carried.Elapsed),
	})
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.id, err)
	}
	if paused {
		sc.Pause()
	}
	s.scroller = sc
	return nil
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if s.scroller == nil {
		return core.StepResult{State: s.State(), Err: fmt.Errorf("scene %q: not initialized", s.id)}
	}

	if in.Has(core.ActionPause) {
		if s.scroller.Paused() {
			s.scroller.Resume()
		} else {
			s.scroller.Pause()
		}
	}
	if in.Has(core.ActionFaster) {
		s.setSpeed(s.speed * speedStep)
	}
	if in.Has(core.ActionSlower) {
		s.setSpeed(s.speed / speedStep)
	}

	if dir, ok := directionFor(in); ok && dir != s.dir {
		s.dir = dir
		if err := s.rebuild(s.runtime); err != nil {
			s.lastErr = err
			return core.StepResult{State: s.State(), Err: err}
		}
	}

	s.lastErr = s.scroller.Update()
	return core.StepResult{State: s.State(), Err: s.lastErr}
}

// rampCurve continues the ramp across rebuilds.
type rampCurve struct {
	ramp   *config.Ramp
	offset time.Duration
}

func (c rampCurve) Speed(base float64, elapsed time.Duration) float64 {
	return c.ramp.Speed(base, c.offset+elapsed)
}

func rampFrom(r *config.Ramp, offset time.Duration) scroll.SpeedCurve {
	return rampCurve{ramp: r, offset: offset}
}

func (s *Scene) setSpeed(v float64) {
	if err := s.scroller.SetSpeed(v); err == nil {
		s.speed = v
	}
}

func directionFor(in core.InputFrame) (scroll.Direction, bool) {
	switch {
	case in.Has(core.ActionScrollUp):
		return scroll.Up, true
	case in.Has(core.ActionScrollDown):
		return scroll.Down, true
	case in.Has(core.ActionScrollLeft):
		return scroll.Left, true
	case in.Has(core.ActionScrollRight):
		return scroll.Right, true
	}
	return scroll.Left, false
}

// Render draws the tiles and a one-line HUD.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()
	if s.scroller == nil {
		return
	}

	for _, t := range s.scroller.Tiles() {
		if sp, ok := t.Handle.(*Sprite); ok {
			sp.Draw(dst, t.Pos)
		}
	}

	st := s.State()
	hud := fmt.Sprintf(" %s %s  %.1f c/s  dist %.0f  recycled %d ",
		s.Title(), arrows[s.dir], st.Speed, st.Distance, st.Recycles)
	if st.Failed {
		hud += " ! tile unavailable "
	}
	dst.DrawText(1, 0, hud)

	if st.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns totals across rebuilds since the last Reset.
func (s *Scene) State() core.SceneState {
	st := s.carried
	var speed float64
	paused := false
	if s.scroller != nil {
		cur := s.scroller.Stats()
		st.Distance += cur.Distance
		st.Recycles += cur.Recycles
		speed = s.scroller.Speed()
		paused = s.scroller.Paused()
	}
	return core.SceneState{
		Direction: s.dir.String(),
		Distance:  st.Distance,
		Recycles:  st.Recycles,
		Speed:     speed,
		Paused:    paused,
		Failed:    s.lastErr != nil,
	}
}

// Close releases the scroller's tiles.
func (s *Scene) Close() {
	if s.scroller != nil {
		s.scroller.Close()
		s.scroller = nil
	}
}

// Describe returns a one-line summary for listings.
func (s *Scene) Describe() string {
	return fmt.Sprintf("%s, %.0f c/s, %s", s.dir, s.speed, strings.Join(s.names, "/"))
}

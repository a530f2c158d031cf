package config

import (
	"math"
	"time"
)

// Ramp calculates the effective scroll speed from elapsed scrolling time.
// It satisfies scroll.SpeedCurve.
type Ramp struct {
	cfg          RampConfig
	initialLevel float64
}

// NewRamp creates a new speed ramp.
func NewRamp(cfg RampConfig) *Ramp {
	return &Ramp{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether speed grows over time.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Type != "none"
}

// Level returns the current ramp level (0.0 to 1.0).
func (r *Ramp) Level(elapsed time.Duration) float64 {
	if !r.IsEnabled() {
		return r.initialLevel
	}

	maxAt := r.cfg.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(elapsed.Seconds()/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return r.initialLevel + progress*(1.0-r.initialLevel)
}

// Speed returns base scaled by the current level: base at level 0,
// base*(1+speed_multiplier) at level 1.
func (r *Ramp) Speed(base float64, elapsed time.Duration) float64 {
	return base * (1.0 + r.Level(elapsed)*r.cfg.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic variant picks.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic variant selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SceneState represents the current state of a scrolling scene.
type SceneState struct {
	Direction string  // Current scroll direction name
	Distance  float64 // World units scrolled since the last reset
	Recycles  int     // Tiles recycled since the last reset
	Speed     float64 // Effective speed in units per second
	Paused    bool    // Whether scrolling is paused
	Failed    bool    // Whether the last tick reported a recycle failure
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
	Err   error // Non-fatal tick error; the scene keeps running
}

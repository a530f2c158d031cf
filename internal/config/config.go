// Package config provides YAML-based scene configuration loading and
// speed-ramp management for the scroller.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ScrollerConfig is the root of scroller.yaml.
type ScrollerConfig struct {
	DefaultScene string                 `yaml:"default_scene"`
	Scenes       map[string]SceneConfig `yaml:"scenes"`
}

// SceneConfig describes one scrolling scene.
type SceneConfig struct {
	Title    string          `yaml:"title"`
	Scroll   ScrollSettings  `yaml:"scroll"`
	Ramp     RampConfig      `yaml:"ramp"`
	Variants []VariantConfig `yaml:"variants"`
}

// ScrollSettings holds the values resolved once when a scroller starts.
type ScrollSettings struct {
	Direction string  `yaml:"direction"` // up, down, left, right
	Speed     float64 `yaml:"speed"`     // cells per second
	Reskin    bool    `yaml:"reskin"`    // pick a new variant on every recycle
}

// RampConfig defines how scroll speed grows over time.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Type            string  `yaml:"type"`             // "time" or "none"
	InitialLevel    float64 `yaml:"initial_level"`    // 0.0 = base speed
	MaxAt           float64 `yaml:"max_at"`           // seconds until full ramp
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to 1.0 at full ramp
}

// VariantConfig is one tile look. Width or height 0 fills the viewport.
type VariantConfig struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Art    []string `yaml:"art"` // pattern repeated across the tile
}

// SpeedPreset represents a named speed level.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed"
)

// ParseSpeedPreset maps a flag value to a preset. Empty means "use config".
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(s)); p {
	case "", SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown speed preset %q", s)
}

// InitialLevelForPreset returns the ramp's starting level for a preset.
func InitialLevelForPreset(preset SpeedPreset) float64 {
	switch preset {
	case SpeedSlow:
		return 0.0
	case SpeedNormal:
		return 0.3
	case SpeedFast:
		return 0.7
	default:
		return 0.0
	}
}

// Scene returns the named scene, or the default scene when id is empty.
func (c ScrollerConfig) Scene(id string) (SceneConfig, error) {
	if id == "" {
		id = c.DefaultScene
	}
	sc, ok := c.Scenes[id]
	if !ok {
		return SceneConfig{}, fmt.Errorf("config: unknown scene %q", id)
	}
	return sc, nil
}

// SceneIDs returns all scene IDs in sorted order.
func (c ScrollerConfig) SceneIDs() []string {
	ids := make([]string, 0, len(c.Scenes))
	for id := range c.Scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks every scene.
func (c ScrollerConfig) Validate() error {
	if len(c.Scenes) == 0 {
		return errors.New("config: no scenes defined")
	}
	if c.DefaultScene != "" {
		if _, ok := c.Scenes[c.DefaultScene]; !ok {
			return fmt.Errorf("config: default scene %q is not defined", c.DefaultScene)
		}
	}
	var errs []error
	for _, id := range c.SceneIDs() {
		if err := c.Scenes[id].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene %q: %w", id, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks a single scene. An empty variant list is an error.
func (s SceneConfig) Validate() error {
	switch strings.ToLower(s.Scroll.Direction) {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("invalid direction %q", s.Scroll.Direction)
	}
	if s.Scroll.Speed < 0 {
		return fmt.Errorf("negative speed %v", s.Scroll.Speed)
	}
	switch s.Ramp.Type {
	case "", "none", "time":
	default:
		return fmt.Errorf("invalid ramp type %q", s.Ramp.Type)
	}
	if len(s.Variants) == 0 {
		return errors.New("no tile variants")
	}

	seen := make(map[string]bool, len(s.Variants))
	for i, v := range s.Variants {
		if v.Name == "" {
			return fmt.Errorf("variant %d has no name", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variant %q", v.Name)
		}
		seen[v.Name] = true
		if v.Width < 0 || v.Height < 0 {
			return fmt.Errorf("variant %q has negative size", v.Name)
		}
		if len(v.Art) == 0 {
			return fmt.Errorf("variant %q has no art", v.Name)
		}
	}
	return nil
}

// VariantNames returns the variant names in config order.
func (s SceneConfig) VariantNames() []string {
	names := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		names[i] = v.Name
	}
	return names
}

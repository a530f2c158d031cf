package config

import (
	_ "embed"
)

//go:embed defaults/scroller.yaml
var defaultScrollerYAML []byte

// DefaultScrollerConfig returns a minimal hardcoded configuration, used only
// if the embedded YAML cannot be parsed.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		DefaultScene: "skyline",
		Scenes: map[string]SceneConfig{
			"skyline": {
				Title: "City Skyline",
				Scroll: ScrollSettings{
					Direction: "left",
					Speed:     12,
					Reskin:    true,
				},
				Ramp: RampConfig{
					Enabled:         true,
					Type:            "time",
					MaxAt:           120,
					SpeedMultiplier: 1.5,
				},
				Variants: []VariantConfig{
					{
						Name:  "towers",
						Color: "cyan",
						Art: []string{
							"  ▄▄    ▄   ",
							"▄ ██ ▄▄ █▄  ",
							"█▄██▄██▄██▄▄",
						},
					},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultScrollerYAML
}

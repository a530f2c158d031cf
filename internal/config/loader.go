package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when the built-in config is used.
const SourceEmbedded = "embedded"

// Load loads the scroller configuration and reports where it came from.
// Search order: customPath -> ~/.scroller/configs/scroller.yaml ->
// ./configs/scroller.yaml -> embedded default.
//
// A custom path that cannot be read or parsed is an error. Unreadable or
// invalid files further down the search path are skipped.
func Load(customPath string) (ScrollerConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return ScrollerConfig{}, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("scroller.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "scroller.yaml")
	if cfg, err := loadFile(local); err == nil {
		return cfg, local, nil
	}

	cfg, err := Parse(defaultScrollerYAML)
	if err != nil {
		return DefaultScrollerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (ScrollerConfig, error) {
	var cfg ScrollerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (ScrollerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScrollerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ScrollerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scroller", "configs", filename)
}

// ApplySpeedPreset modifies the scene based on a speed preset. Presets never
// turn on a ramp the scene disables.
func ApplySpeedPreset(cfg *SceneConfig, preset SpeedPreset) {
	switch preset {
	case "":
		return
	case SpeedFixed:
		cfg.Ramp.Enabled = false
		cfg.Ramp.InitialLevel = 0
		return
	}

	cfg.Ramp.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case SpeedSlow:
		cfg.Scroll.Speed *= 0.5
	case SpeedFast:
		cfg.Scroll.Speed *= 1.5
	}
}

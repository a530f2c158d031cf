package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const customYAML = `
default_scene: test
scenes:
  test:
    title: Test Strip
    scroll:
      direction: Right
      speed: 4
    variants:
      - name: one
        art: ["#"]
`

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	for _, id := range []string{"skyline", "starfield", "river", "highway"} {
		if _, err := cfg.Scene(id); err != nil {
			t.Errorf("embedded defaults missing scene %q: %v", id, err)
		}
	}

	sc, err := cfg.Scene("")
	if err != nil {
		t.Fatalf("default scene: %v", err)
	}
	if sc.Title != "City Skyline" {
		t.Errorf("default scene title = %q", sc.Title)
	}
}

func TestHardcodedDefaultIsValid(t *testing.T) {
	if err := DefaultScrollerConfig().Validate(); err != nil {
		t.Errorf("DefaultScrollerConfig() invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(customYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	sc, err := cfg.Scene("test")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Scroll.Speed != 4 || sc.Scroll.Direction != "Right" {
		t.Errorf("unexpected scroll settings: %+v", sc.Scroll)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scenes: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	_, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", source)
	}

	// Local configs/ beats the embedded default.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "scroller.yaml"), []byte(customYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	_, source, _ = Load("")
	if source != filepath.Join("configs", "scroller.yaml") {
		t.Errorf("source = %q, expected local configs", source)
	}

	// The user directory beats both.
	userDir := filepath.Join(home, ".scroller", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, "scroller.yaml")
	if err := os.WriteFile(userPath, []byte(customYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	_, source, _ = Load("")
	if source != userPath {
		t.Errorf("source = %q, expected %q", source, userPath)
	}
}

func TestValidate(t *testing.T) {
	valid := func() SceneConfig {
		return SceneConfig{
			Scroll:   ScrollSettings{Direction: "left", Speed: 1},
			Variants: []VariantConfig{{Name: "a", Art: []string{"x"}}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr string
	}{
		{"valid", func(*SceneConfig) {}, ""},
		{"bad direction", func(s *SceneConfig) { s.Scroll.Direction = "diagonal" }, "invalid direction"},
		{"negative speed", func(s *SceneConfig) { s.Scroll.Speed = -1 }, "negative speed"},
		{"bad ramp", func(s *SceneConfig) { s.Ramp.Type = "score" }, "invalid ramp type"},
		{"no variants", func(s *SceneConfig) { s.Variants = nil }, "no tile variants"},
		{"unnamed variant", func(s *SceneConfig) { s.Variants[0].Name = "" }, "has no name"},
		{"duplicate variant", func(s *SceneConfig) {
			s.Variants = append(s.Variants, s.Variants[0])
		}, "duplicate variant"},
		{"negative size", func(s *SceneConfig) { s.Variants[0].Width = -2 }, "negative size"},
		{"no art", func(s *SceneConfig) { s.Variants[0].Art = nil }, "has no art"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := valid()
			tc.mutate(&sc)
			err := sc.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	if err := (ScrollerConfig{}).Validate(); err == nil {
		t.Error("empty config should be invalid")
	}

	cfg := DefaultScrollerConfig()
	cfg.DefaultScene = "nowhere"
	if err := cfg.Validate(); err == nil {
		t.Error("undefined default scene should be invalid")
	}
}

func TestApplySpeedPreset(t *testing.T) {
	base := SceneConfig{
		Scroll: ScrollSettings{Speed: 10},
		Ramp:   RampConfig{Enabled: true, Type: "time", InitialLevel: 0.5},
	}

	fixed := base
	ApplySpeedPreset(&fixed, SpeedFixed)
	if fixed.Ramp.Enabled || fixed.Ramp.InitialLevel != 0 {
		t.Errorf("fixed preset should disable the ramp: %+v", fixed.Ramp)
	}

	slow := base
	ApplySpeedPreset(&slow, SpeedSlow)
	if slow.Scroll.Speed != 5 || slow.Ramp.InitialLevel != 0 {
		t.Errorf("slow preset: speed %v level %v", slow.Scroll.Speed, slow.Ramp.InitialLevel)
	}

	fast := base
	ApplySpeedPreset(&fast, SpeedFast)
	if fast.Scroll.Speed != 15 || fast.Ramp.InitialLevel != 0.7 {
		t.Errorf("fast preset: speed %v level %v", fast.Scroll.Speed, fast.Ramp.InitialLevel)
	}

	untouched := base
	ApplySpeedPreset(&untouched, "")
	if untouched.Scroll.Speed != 10 || untouched.Ramp.InitialLevel != 0.5 {
		t.Error("empty preset should leave the scene unchanged")
	}

	for _, preset := range []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast} {
		off := SceneConfig{
			Scroll: ScrollSettings{Speed: 10},
			Ramp:   RampConfig{Enabled: false, SpeedMultiplier: 2},
		}
		ApplySpeedPreset(&off, preset)
		if off.Ramp.Enabled {
			t.Errorf("%s preset enabled a disabled ramp", preset)
		}
		r := NewRamp(off.Ramp)
		if r.Speed(10, 0) != r.Speed(10, time.Hour) {
			t.Errorf("%s preset: disabled ramp should not grow over time", preset)
		}
	}
}

func TestParseSpeedPreset(t *testing.T) {
	for _, in := range []string{"", "slow", "NORMAL", "fast", "fixed"} {
		if _, err := ParseSpeedPreset(in); err != nil {
			t.Errorf("ParseSpeedPreset(%q) = %v", in, err)
		}
	}
	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("unknown preset should fail")
	}
}

package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/registry"
)

// Register adds every scene in cfg to the registry. Scenes are checked up
// front so that factories never fail later.
func Register(cfg config.ScrollerConfig, opts ...Option) error {
	for _, id := range cfg.SceneIDs() {
		sc := cfg.Scenes[id]
		if _, err := New(id, sc, opts...); err != nil {
			return fmt.Errorf("scene: register %q: %w", id, err)
		}

		registry.Register(id, func() registry.Scene {
			//nolint:errcheck // config was checked above
			s, _ := New(id, sc, opts...)
			return s
		})
	}
	return nil
}

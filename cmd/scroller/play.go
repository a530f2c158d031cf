package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Scroll a scene",
	Long: `Start scrolling the specified scene.

Controls:
  P/Space           - Pause / resume
  +/-               - Faster / slower
  Arrows or h/j/k/l - Change scroll direction
  Esc/B             - Stop
  Q/Ctrl+C          - Quit

Speed presets:
  slow   - Half speed, gentle ramp
  normal - Configured speed, ramp starts at 30%
  fast   - 1.5x speed, ramp starts at 70%
  fixed  - No ramp, configured speed forever

Without a scene the config's default_scene is used.

Examples:
  scroller play
  scroller play skyline
  scroller play starfield --speed fast
  scroller play highway --fps 60 --seed 42
  scroller play river --log-file ~/.scroller/scroller.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	sceneID := scenesConfig.DefaultScene
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		return unknownScene(sceneID)
	}

	sc, err := registry.Create(sceneID)
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Info("play", "scene", sceneID, "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate)

	return tui.Run(sc, store, logger, cfg)
}

func unknownScene(id string) error {
	return fmt.Errorf("unknown scene %q (run 'scroller list' to see available scenes)", id)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run database. History is optional: on failure the
// scene still runs and nothing is recorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run history disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

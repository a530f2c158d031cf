package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a scene picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a scene.
Esc stops the scene and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start scene
  Tab          - Longest runs
  Q            - Quit

Examples:
  scroller menu
  scroller menu --fps 60
  scroller menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, logger, runtimeConfig())
}

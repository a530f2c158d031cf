package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured scenes",
	Long:  `Shows every scene loaded from the scene configuration.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes configured.")
		return
	}

	fmt.Printf("Scenes (from %s):\n\n", configSource)

	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Scroll")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "------")

	for _, s := range scenes {
		sc, err := scenesConfig.Scene(s.ID)
		if err != nil {
			continue
		}
		described, err := scene.New(s.ID, sc, scene.WithPreset(speedPreset))
		if err != nil {
			logger.Warn("skipping scene", "scene", s.ID, "err", err)
			continue
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, s.ID, s.Title, described.Describe())
	}

	fmt.Println()
	fmt.Println("Run 'scroller play <id>' to watch a scene.")
}

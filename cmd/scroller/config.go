package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/config"
)

var flagDumpDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show where scenes are loaded from",
	Long: `Print the active scene config source and its scenes.

Config search order:
  1. --config <path>
  2. ~/.scroller/configs/scroller.yaml
  3. ./configs/scroller.yaml
  4. built-in defaults

Use --defaults to print the built-in config as a starting point:
  scroller config --defaults > ~/.scroller/configs/scroller.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDumpDefaults, "defaults", false, "Print the built-in scene config YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDumpDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	fmt.Printf("Source:  %s\n", configSource)
	fmt.Printf("Default: %s\n\n", scenesConfig.DefaultScene)
	for _, id := range scenesConfig.SceneIDs() {
		sc := scenesConfig.Scenes[id]
		ramp := "off"
		if sc.Ramp.Enabled && sc.Ramp.Type != "none" {
			ramp = fmt.Sprintf("x%.1f over %.0fs", 1+sc.Ramp.SpeedMultiplier, sc.Ramp.MaxAt)
		}
		fmt.Printf("  %-12s %-6s %6.1f c/s  reskin=%-5t ramp %s  %v\n",
			id, sc.Scroll.Direction, sc.Scroll.Speed, sc.Scroll.Reskin, ramp, sc.VariantNames())
	}
	return nil
}

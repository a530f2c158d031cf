package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scene]",
	Short: "Show the longest runs of a scene",
	Long: `Display the longest recorded runs for the specified scene.
With --tui the interactive history browser is opened instead.

Examples:
  scroller runs skyline
  scroller runs river --limit 20
  scroller runs --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs interactively")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagRunsTUI {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if len(args) == 0 {
		return errors.New("scene required (or use --tui)")
	}
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		return unknownScene(sceneID)
	}

	runs, err := store.TopRuns(sceneID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Longest runs - %s\n\n", sceneTitle(sceneID))

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'scroller play %s' to record the first one!\n", sceneID)
		return nil
	}

	fmt.Printf("  %-4s  %10s  %8s  %-6s  %8s  %s\n", "Rank", "Distance", "Recycled", "Dir", "Time", "When")
	fmt.Printf("  %-4s  %10s  %8s  %-6s  %8s  %s\n", "----", "--------", "--------", "---", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %10s  %8s  %-6s  %8s  %s\n",
			i+1,
			humanize.Comma(int64(r.Distance)),
			humanize.Comma(int64(r.Recycles)),
			r.Direction,
			r.Duration.Round(time.Second),
			humanize.Time(r.CreatedAt),
		)
	}
	return nil
}

func sceneTitle(id string) string {
	for _, s := range registry.List() {
		if s.ID == id {
			return s.Title
		}
	}
	return id
}

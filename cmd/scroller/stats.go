package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for every scene",
	Long: `Display run counts, best and total distance for every scene that
has recorded runs.

Examples:
  scroller stats
  scroller stats --db ./runs.db`,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	stats, err := store.AllSceneStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %5s  %10s  %12s  %10s  %s\n", "Scene", "Runs", "Best", "Total", "Recycled", "Last")
	fmt.Printf("  %-16s  %5s  %10s  %12s  %10s  %s\n", "-----", "----", "----", "-----", "--------", "----")

	var total float64
	for _, id := range ids {
		st := stats[id]
		total += st.TotalDistance
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = humanize.Time(st.LastPlayed)
		}
		fmt.Printf("  %-16s  %5d  %10s  %12s  %10s  %s\n",
			sceneTitle(id),
			st.Runs,
			humanize.Comma(int64(st.BestDistance)),
			humanize.Comma(int64(st.TotalDistance)),
			humanize.Comma(st.TotalRecycles),
			last,
		)
	}

	fmt.Println()
	fmt.Printf("Total distance scrolled: %s cells\n", humanize.Comma(int64(total)))
	return nil
}

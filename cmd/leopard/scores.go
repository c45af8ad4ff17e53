package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded scores.

Examples:
  leopard scores
  leopard scores --limit 25
  leopard scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `Display the most recently recorded runs, newest first, with a
summary of every run played.

Examples:
  leopard runs
  leopard runs --limit 50`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(leopard.GameID); err != nil {
			return err
		}
		fmt.Println("Scores and runs cleared.")
		return nil
	}

	scores, err := store.TopScores(leopard.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Ninja Leopard")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'leopard play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(leopard.GameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(leopard.GameID)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %-7s  %s\n", "Date", "Score", "Defeated", "Resets", "Time", "Cleared")
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "--------", "------", "----", "-------")
	for _, r := range runs {
		cleared := "no"
		if r.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-16s  %-8d  %-8d  %-6d  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Defeated, r.LifeResets,
			formatTicks(r.Ticks, flagFPS), cleared)
	}

	fmt.Println()
	fmt.Printf("%d runs, best %d, average %.0f, %d enemies defeated, %d cleared\n",
		stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalDefeated, stats.ClearedRuns)
	return nil
}

// formatTicks renders a tick count as m:ss at the given rate.
func formatTicks(ticks, rate int) string {
	if rate <= 0 {
		rate = 60
	}
	secs := ticks / rate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

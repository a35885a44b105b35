package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/infrastructure/persistence"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the highest scoring finished runs from the runs database.

Examples:
  game scores
  game scores --limit 20
  game scores --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := persistence.OpenSQLite(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("read runs: %w", err)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'game play' to set the first score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-13s  %-8s  %-20s  %s\n", "Rank", "Score", "Level", "Outcome", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-13s  %-8s  %-20s  %s\n", "----", "-----", "-----", "-------", "-----", "----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-13s  %-8d  %-20d  %s\n",
			i+1, run.Score, run.Level, run.Outcome, run.Ticks, run.Seed, dateStr)
	}
	return nil
}

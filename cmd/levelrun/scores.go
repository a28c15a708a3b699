package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelrun/internal/platform/tui"
	"github.com/vovakirdan/levelrun/internal/storage"
)

var (
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs.

Examples:
  levelrun scores
  levelrun scores --recent --limit 5
  levelrun scores --interactive
  levelrun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		// Without a catalog level IDs are shown instead of names
		_, catalog, _ := loadSession()
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, catalog, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'levelrun play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %s\n", "Rank", "Score", "Result", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7s  %-12s  %s\n", i+1, r.Score, r.Outcome, r.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Losses: %d  Avg: %.1f\n",
			stats.BestScore, stats.Runs, stats.Wins, stats.Losses, stats.AvgScore)
	}
}

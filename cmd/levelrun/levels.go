package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level sequence",
	Long:  `Shows the configured levels in order and the level each one leads to.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, catalog, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	list := catalog.List()
	if len(list) == 0 {
		fmt.Println("No levels configured.")
		return
	}

	fmt.Printf("Levels - %s\n", cfg.Game.Title)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxIDLen, "Next", "Name")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxIDLen, "----", "----")

	for _, l := range list {
		next := l.Next
		if next == "" {
			next = "-"
		}
		marker := ""
		if l.ID == catalog.First() {
			marker = " (start)"
		}
		fmt.Printf("  %-*s  %-*s  %s%s\n", maxIDLen, l.ID, maxIDLen, next, l.Name, marker)
	}

	fmt.Println()
	if cfg.HasTimedLevel() {
		fmt.Printf("Each level is timed: %.0fs.\n", cfg.StartTime())
	}
	if cfg.HasWinScoreCondition() {
		fmt.Printf("Score %d points in a level to beat it.\n", cfg.WinScore())
	}
}

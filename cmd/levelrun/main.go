// levelrun is a terminal host for a level-based game session: score, lives,
// a level sequence and the playing, dying, beat-level and game-over flow.
//
// Usage:
//
//	levelrun play            - Start a session at the main menu
//	levelrun levels          - List the configured level sequence
//	levelrun scores          - Show recorded runs
//	levelrun config          - Print the effective session configuration
//
// Global flags:
//
//	--config <path> - Session config YAML (default: search order)
//	--db <path>     - Run history database (default: ~/.levelrun/runs.db)
//	--debug         - Log controller transitions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelrun",
	Short: "levelrun - Run through a sequence of levels in your terminal",
	Long: `levelrun drives a single-player session through a configured
sequence of levels with score, lives and an optional level timer.

Available commands:
  play     - Start a session at the main menu
  levels   - Show the level sequence
  scores   - View recorded runs
  config   - Print the effective session configuration

Examples:
  levelrun play
  levelrun play --config ./my-session.yaml --fps 30
  levelrun levels
  levelrun scores --recent`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom session config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.levelrun/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.levelrun/levelrun.log", "Log file used while the terminal UI runs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelrun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective session configuration",
	Long: `Loads the session configuration the same way 'play' does and prints it
as YAML. Copy the output to ~/.levelrun/session.yaml to customize it.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, _, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after the search path and
--difficulty have been applied. Redirect it to a file to start a custom
config.

Examples:
  dash config > ~/.dash/configs/runner.yaml
  dash config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

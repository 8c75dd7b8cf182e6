// dash is an endless runner for the terminal, an SSH server and the desktop.
//
// Usage:
//
//	dash play       - Play in the terminal
//	dash window     - Play in a desktop window
//	dash serve      - Start SSH server for remote play
//	dash scores     - Show the best score and past runs
//	dash config     - Print the effective configuration
//	dash sim        - Run a headless game with an autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.dash/dash.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game config flags shared by play, window, serve, config and sim
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "dash - jump the cacti, duck the birds",
	Long: `dash is an endless runner. Jump over ground obstacles, duck under
low-flying ones, and beat your best score as the game speeds up.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best score and past runs
  config   - Print the effective configuration
  sim      - Headless run with an autopilot

Examples:
  dash play
  dash play --difficulty hard
  dash window
  dash serve --ssh :2222
  dash scores --plain
  dash sim --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/dash.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// addConfigFlags registers the game tuning flags on cmd.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the runner config and applies --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash/internal/app"
)

var (
	flagDuration time.Duration
	flagRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Play one run without a terminal at a fixed frame rate. An autopilot
jumps and ducks; the run ends on the first collision or after --duration
of game time. The same --seed always produces the same run.

Examples:
  dash sim --seed 42
  dash sim --seed 7 --fps 30 --duration 5m
  dash sim --record --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addConfigFlags(simCmd)
	simCmd.Flags().DurationVar(&flagDuration, "duration", 2*time.Minute, "Game time limit")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run and best score to the database")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := app.Options{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
		Name:   "autopilot",
		Copy:   func(string) error { return nil },
	}
	if flagRecord {
		backend := app.OpenBackend(flagDBPath, logger)
		defer backend.Close()
		opts.Store = backend.Store
		opts.History = backend.History
	}

	session := app.NewSession(opts)
	pilot := app.NewAutopilot(cfg.Collision.RunnerRightInset)
	result := app.Simulate(session, pilot, flagFPS, flagDuration)

	fmt.Printf("seed      %d\n", result.Seed)
	fmt.Printf("frames    %d\n", result.Frames)
	fmt.Printf("time      %s\n", result.Summary.Duration.Round(time.Millisecond))
	fmt.Printf("score     %d\n", int(result.Summary.Score))
	fmt.Printf("best      %d\n", result.Summary.HighScore)
	fmt.Printf("jumps     %d\n", result.Summary.Jumps)
	fmt.Printf("cleared   %d\n", result.Summary.Cleared)
	if result.Ended {
		fmt.Printf("hit       %s\n", result.Obstacle)
	} else {
		fmt.Println("hit       none (time limit)")
	}
	if result.Summary.NewRecord {
		fmt.Println("new record!")
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/audio"
	"github.com/vovakirdan/dash/internal/platform/window"
)

var (
	flagScale float64
	flagMute  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window with sound.

Controls are the same as in the terminal, except that crouching lasts
exactly as long as the key or pointer is held.

Examples:
  dash window
  dash window --scale 2
  dash window --mute --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addConfigFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagBell, "bell", false, "Also ring the launching terminal's bell on collisions")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend := app.OpenBackend(flagDBPath, logger)
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("closing database", "error", err)
		}
	}()

	opts := app.Options{
		Config:  cfg,
		Store:   backend.Store,
		History: backend.History,
		Logger:  logger,
		Seed:    flagSeed,
		Name:    currentUser(),
	}
	var players audio.Multi
	if !flagMute {
		players = append(players, window.NewSound())
	}
	if flagBell {
		players = append(players, audio.NewBell(os.Stdout))
	}
	opts.Player = players
	session := app.NewSession(opts)

	if err := window.Run(session, window.Options{
		Scale:  flagScale,
		TPS:    flagFPS,
		Logger: logger,
	}); err != nil {
		logger.Error("window closed with an error", "error", err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/audio"
	"github.com/vovakirdan/dash/internal/platform/tui"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W     - Jump (starts a run)
  Down/S         - Crouch (hold)
  Enter          - Start / Play Again
  Mouse          - Click the upper half to jump, lower half to crouch
  P/Esc          - Pause
  C              - Copy the last score to the clipboard
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower ramp
  normal - Default tuning
  hard   - Starts faster
  fixed  - No speed-up

Examples:
  dash play
  dash play --difficulty easy
  dash play --config ./my-runner.yaml --bell`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on collisions")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	backend := app.OpenBackend(flagDBPath, logger)

	var player audio.Player = audio.Nop{}
	if flagBell {
		player = audio.NewBell(os.Stdout)
	}

	session := app.NewSession(app.Options{
		Config:  cfg,
		Store:   backend.Store,
		History: backend.History,
		Player:  player,
		Logger:  logger,
		Seed:    flagSeed,
		Name:    currentUser(),
	})

	runErr := tui.Run(session, tui.ModelOptions{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		CanShare: true,
	})

	// Close store before potential exit
	if err := backend.Close(); err != nil {
		logger.Warn("closing database", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if last, ok := session.LastRun(); ok {
		fmt.Println(app.FormatShare(last))
	}
}

// currentUser names the local player in the run history.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

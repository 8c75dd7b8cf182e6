package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dash/internal/config"
	"github.com/vovakirdan/dash/internal/platform/tui"
	"github.com/vovakirdan/dash/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and past runs",
	Long: `Display the persisted best score with the top and most recent runs.

Without --plain this opens an interactive table; tab switches between the
top and recent runs.

Examples:
  dash scores
  dash scores --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best := bestScore(store)

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, best, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dash play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Time", "Jumps", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")
	for i, r := range runs {
		score := strconv.Itoa(r.DisplayScore())
		if r.NewRecord {
			score += "*"
		}
		fmt.Printf("  %-4d  %-7s  %-6s  %-5d  %-12s  %s\n",
			i+1, score, r.Duration.Round(100*time.Millisecond), r.Jumps, r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs, average %.1f, %d jumps\n", stats.Runs, stats.AvgScore, stats.TotalJumps)
	}
}

// bestScore reads the persisted best, falling back to the best recorded run.
func bestScore(store *storage.Store) int {
	key := config.DefaultRunnerConfig().Storage.HighScoreKey
	if v, ok, err := store.Get(key); err == nil && ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if n, err := store.BestRunScore(); err == nil {
		return n
	}
	return 0
}

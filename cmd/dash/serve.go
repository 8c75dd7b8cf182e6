package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash/internal/app"
	"github.com/vovakirdan/dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeBell   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dash SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own run. The best score and the run history
are shared by everyone connected to the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dash/host_key

Examples:
  dash serve                           # Listen on :23234 with auto-generated key
  dash serve --ssh :2222               # Listen on port 2222
  dash serve --host-key ./my_host_key  # Use specific host key
  dash serve --db ./dash.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addConfigFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeBell, "bell", false, "Ring the client's terminal bell on collisions")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	if !cmd.Flags().Changed("log-level") {
		// Session start and end are logged at info.
		logger.SetLevel(log.InfoLevel)
	}

	runnerCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Bell = flagServeBell
	cfg.Runner = runnerCfg

	backend := app.OpenBackend(flagDBPath, logger)
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("closing database", "error", err)
		}
	}()

	server, err := tui.NewSSHServer(cfg, backend, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting dash SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/platform/tui"
	"github.com/vovakirdan/ninja-leopard/internal/registry"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagSSHHoldTicks int
	flagServeConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection plays its own run.

Sessions open on the title screen; quitting a run returns there.
All sessions share the server's scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.leopard/host_key

Logs go to stderr unless --log-file is set.

Examples:
  leopard serve                           # Listen on :23234
  leopard serve --addr :2222              # Listen on port 2222
  leopard serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagSSHHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Frames a key press stays held")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("log-file") {
		flagLogFile = ""
	}
	logger, closeLog, err := openLogger(os.Stderr, "leopard-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = leopard.GameID
	cfg.TickRate = flagFPS
	cfg.HoldTicks = flagSSHHoldTicks
	cfg.Logger = logger
	cfg.NewGame = func(l *log.Logger) registry.Game {
		return leopard.New(leopard.WithConfigPath(flagServeConfig), leopard.WithLogger(l))
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving Ninja Leopard on %s (Ctrl+C to stop)\n", cfg.Address)
	return server.ListenAndServe(ctx)
}

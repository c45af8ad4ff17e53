// leopard is a side-view action game for the terminal, a desktop window
// or remote SSH sessions.
//
// Usage:
//
//	leopard list          - List registered games
//	leopard play          - Play in this terminal (or --gui for a window)
//	leopard menu          - Title screen with play and scoreboard
//	leopard serve         - Start SSH server for remote play
//	leopard scores        - Show high scores
//	leopard runs          - Show recently recorded runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible enemy variants
//	--db <path>           - Set database path (default: ~/.leopard/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination (default: ~/.leopard/leopard.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ninja-leopard/internal/core"
	"github.com/vovakirdan/ninja-leopard/internal/logging"
	"github.com/vovakirdan/ninja-leopard/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leopard",
	Short: "Ninja Leopard - a side-view action game",
	Long: `Ninja Leopard puts a running, jumping, thunder-throwing leopard
against bomb-dropping enemies. Play it in the terminal, in a desktop
window, or host it over SSH.

Available commands:
  list     - Show registered games
  play     - Play directly
  menu     - Title screen with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  runs     - View recent runs

Examples:
  leopard play
  leopard play --gui
  leopard play --config ./leopard.yaml --watch
  leopard serve --addr :2222
  leopard runs --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.leopard/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file path")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}

// openLogger builds the session logger. Interactive commands log to a
// file because the terminal UI owns stdout; fallback is used when
// --log-file is empty.
func openLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger, err := logging.New(out, flagLogLevel, prefix)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// openStore opens the scores database. A failure is logged and play
// continues without records.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-leopard/internal/config"
	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/platform/gui"
	"github.com/vovakirdan/ninja-leopard/internal/platform/tui"
)

var (
	flagConfig    string
	flagWatch     bool
	flagGUI       bool
	flagScale     int
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ninja Leopard",
	Long: `Start a run in this terminal, or in a desktop window with --gui.

Controls:
  Left/Right, A/D       - Walk
  Shift+Left/Right, H   - Run
  Up, W, Space          - Jump
  X                     - Throw thunder
  P                     - Pause
  Esc, Q, Ctrl+C        - Quit and record the run
  Ctrl+S                - Screenshot (terminal only)

Terminals report key presses but not releases, so a control stays held
for --hold-ticks frames after its last press or auto-repeat. Holding X
in a terminal throws a thunder on every auto-repeat; the window throws
one per press.

Examples:
  leopard play
  leopard play --gui --scale 2
  leopard play --config ./leopard.yaml --watch
  leopard play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the run whenever the config file changes")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor (with --gui)")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Frames a key press stays held in the terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagGUI && flagWatch {
		return errors.New("--watch is only supported in the terminal")
	}

	logger, closeLog, err := openLogger(os.Stderr, "leopard")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	path := flagConfig
	var watcher *config.Watcher
	if flagWatch {
		path = config.ResolvePath(flagConfig)
		if path == "" {
			return fmt.Errorf("--watch needs a config file: pass --config or create ~/.leopard/configs/leopard.yaml")
		}
		w, err := config.WatchFile(path)
		if err != nil {
			return err
		}
		defer w.Close()
		watcher = w
		logger.Info("watching config", "path", path)
	}
	game := leopard.New(leopard.WithConfigPath(path), leopard.WithLogger(logger))

	if flagGUI {
		logger.Info("starting window", "seed", rt.Seed)
		return gui.Run(game, store, rt, gui.Options{
			TickRate: flagFPS,
			Scale:    flagScale,
			Logger:   logger,
		})
	}

	opts := tui.Options{
		HoldTicks: flagHoldTicks,
		Watcher:   watcher,
		Logger:    logger,
	}

	logger.Info("starting run", "seed", rt.Seed)
	return tui.Run(game, store, rt, opts)
}

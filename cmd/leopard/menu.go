package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-leopard/internal/games/leopard"
	"github.com/vovakirdan/ninja-leopard/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start at the title screen. Pick Play for a run or High Scores for
the scoreboard. Quitting a run returns to the title screen.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  leopard menu
  leopard menu --fps 30
  leopard menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Frames a key press stays held")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(os.Stderr, "leopard")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	title := leopard.New().Title()
	opts := tui.Options{HoldTicks: flagHoldTicks, Logger: logger}

	for {
		result, err := tui.RunMenu(title, leopard.GameID, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuPlay:
			game := leopard.New(leopard.WithConfigPath(flagConfig), leopard.WithLogger(logger))
			if err := tui.Run(game, store, cfg, opts); err != nil {
				// Bad configs land back on the title screen.
				logger.Error("run failed", "error", err)
			}

		case tui.MenuScores:
			back, err := tui.RunScoreboard(leopard.GameID, title, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}

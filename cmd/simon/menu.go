package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Simon with a difficulty picker",
	Long: `Start Simon in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
Press B or Esc in a game to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  1-3          - Play a difficulty directly
  Enter/Space  - Select difficulty
  Tab          - Game history
  Q            - Quit

Examples:
  simon menu
  simon menu --fps 30
  simon menu --db ./simon.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(io.Discard, "simon")
	defer closeLog()

	gameCfg := loadConfig(logger)
	store, kv := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	env := simon.NewEnv(kv, gameCfg, logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(env, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh sequence for each game unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("playing", "mode", menuResult.GameID)
		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			return
		}
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a game",
	Long: `Start a game at the given difficulty (default from the config file).

Difficulties:
  easy    - 4 pads, 10 points per round
  medium  - 5 pads, 15 points per round ("normal" also works)
  hard    - 6 pads, 20 points per round

Controls:
  1-6 / Click  - Press a pad (only after the sequence finished playing)
  P / Space    - Pause
  R            - Restart
  B / Esc      - Leave the game
  Q / Ctrl+C   - Quit
  Ctrl+S       - Save a screenshot to ~/.simon/screenshots

Examples:
  simon play
  simon play hard
  simon play easy --seed 42
  simon play medium --config ./slow.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(io.Discard, "simon")
	defer closeLog()

	gameCfg := loadConfig(logger)
	if len(args) == 1 {
		if err := config.ApplyDifficultyPreset(&gameCfg, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'simon list' to see the difficulties.")
			os.Exit(1)
		}
	}

	gameID := string(gameCfg.DefaultDifficulty.Canonical())
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'simon list' to see the difficulties.")
		os.Exit(1)
	}

	store, kv := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, simon.NewEnv(kv, gameCfg, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("playing", "mode", gameID)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

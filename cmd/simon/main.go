// simon is the Simon memory game for the terminal.
//
// Usage:
//
//	simon list                 - List difficulties
//	simon play [difficulty]    - Play a game
//	simon menu                 - Pick a difficulty interactively
//	simon serve                - Start SSH server for remote play
//	simon scores [difficulty]  - Show game history
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible sequences
//	--db <path>          - Set database path (default: ~/.simon/simon.db)
//	--config <path>      - Use a custom timing/scoring YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/storage"

	// Registers the difficulty modes
	_ "github.com/vovakirdan/tui-simon/internal/games/simon"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - the memory game in your terminal",
	Long: `Simon flashes a growing sequence of colored pads. Repeat it pad by pad
to score; one wrong pad ends the game.

Available commands:
  list     - Show the difficulties
  play     - Play a difficulty directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View game history

Examples:
  simon list
  simon play hard
  simon menu
  simon serve --ssh :2222
  simon scores easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/simon.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom timing/scoring YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger. Logs go to --log-file when set, otherwise to
// fallback. Interactive commands pass io.Discard since the game owns the
// terminal. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger that exits on bad flags.
func mustLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(fallback, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// loadConfig loads timing and scoring, exiting on a broken --config.
func loadConfig(logger *log.Logger) config.SimonConfig {
	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded",
		"flash_hold_ms", cfg.Timing.FlashHoldMS,
		"flash_gap_ms", cfg.Timing.FlashGapMS,
		"round_delay_ms", cfg.Timing.RoundDelayMS,
	)
	return cfg
}

// openStore opens the database. When it cannot be opened the high score is
// kept in memory for this run and history is not recorded.
func openStore(logger *log.Logger) (*storage.Store, core.KV) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("database unavailable", "path", flagDBPath, "error", err)
		return nil, storage.NewMemory()
	}
	return store, store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

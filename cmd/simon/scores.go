package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/registry"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the high score and game history",
	Long: `Without arguments, shows the high score and a summary per difficulty.
With a difficulty, shows its top 10 games.

Examples:
  simon scores
  simon scores hard
  simon scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the given difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(io.Discard, "simon")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
			os.Exit(1)
		}
		printSummary(store, logger)
		return
	}

	d, err := config.ParseDifficulty(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'simon list' to see the difficulties.")
		os.Exit(1)
	}
	gameID := string(d)

	if flagClear {
		if err := store.ClearGames(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s history.\n", gameID)
		return
	}

	printTopGames(store, gameID)
}

// printSummary shows the stored high score and per-difficulty stats.
func printSummary(store *storage.Store, logger *log.Logger) {
	high, err := simon.NewKeyedHighScores(store).Load()
	if err != nil {
		logger.Warn("stored high score unreadable", "error", err)
	}
	fmt.Printf("High Score: %d\n", high)
	fmt.Println()

	fmt.Printf("  %-20s  %-5s  %-5s  %-6s  %s\n", "Difficulty", "Games", "Best", "Rounds", "Average")
	fmt.Printf("  %-20s  %-5s  %-5s  %-6s  %s\n", "----------", "-----", "----", "------", "-------")
	for _, g := range registry.List() {
		stats, err := store.GameStats(g.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-20s  %-5d  %-5d  %-6d  %.1f\n",
			g.Title, stats.GamesCount, stats.BestScore, stats.BestRound, stats.AvgScore)
	}
}

// printTopGames lists the best games of one difficulty.
func printTopGames(store *storage.Store, gameID string) {
	games, err := store.TopGames(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Games - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'simon play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Rounds", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, g.Score, g.Rounds, g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

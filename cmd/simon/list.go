package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulties",
	Long:  `Shows every difficulty with its pads and points per round.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(io.Discard, "simon")
	defer closeLog()
	cfg := loadConfig(logger)

	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Points", "Pads")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "----")

	for _, g := range modes {
		d := config.Difficulty(g.ID)
		pads := make([]string, 0, simon.PaletteSize(d))
		for _, c := range simon.Palette(d) {
			pads = append(pads, string(c))
		}
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, g.ID, cfg.Scoring.PointsFor(d), strings.Join(pads, " "))
	}

	fmt.Println()
	fmt.Println("Run 'simon play <id>' to play.")
}

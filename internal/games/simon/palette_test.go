package simon

import (
	"testing"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

func TestPaletteSizes(t *testing.T) {
	tests := []struct {
		difficulty config.Difficulty
		want       []Color
	}{
		{config.DifficultyEasy, []Color{Red, Blue, Green, Yellow}},
		{config.DifficultyMedium, []Color{Red, Blue, Green, Yellow, Purple}},
		{config.DifficultyHard, []Color{Red, Blue, Green, Yellow, Purple, Orange}},
	}
	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			got := Palette(tc.difficulty)
			if len(got) != len(tc.want) || PaletteSize(tc.difficulty) != len(tc.want) {
				t.Fatalf("Palette(%s) = %v, expected %v", tc.difficulty, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Palette(%s)[%d] = %s, expected %s", tc.difficulty, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPaletteIsSuperset(t *testing.T) {
	levels := config.Difficulties()
	for i := 1; i < len(levels); i++ {
		smaller := Palette(levels[i-1])
		larger := Palette(levels[i])
		for _, c := range smaller {
			if indexOf(larger, c) < 0 {
				t.Errorf("%s palette missing %s from %s", levels[i], c, levels[i-1])
			}
		}
	}
}

func TestPaletteReturnsCopy(t *testing.T) {
	p := Palette(config.DifficultyEasy)
	p[0] = Orange
	if Palette(config.DifficultyEasy)[0] != Red {
		t.Error("modifying a returned palette changed the next one")
	}
}

func TestColorTone(t *testing.T) {
	seen := make(map[core.Color]bool)
	for _, c := range Palette(config.DifficultyHard) {
		tone := c.Tone()
		if seen[tone] {
			t.Errorf("%s shares its tone with another pad", c)
		}
		seen[tone] = true
	}
}

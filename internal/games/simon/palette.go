// Package simon implements the Simon memory game: the player watches a
// growing sequence of pad flashes and reproduces it pad by pad.
package simon

import (
	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

// Color identifies a pad.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Orange Color = "orange"
)

// allColors lists every pad in palette order. Each difficulty uses a prefix,
// so easier palettes are always subsets of harder ones.
var allColors = [...]Color{Red, Blue, Green, Yellow, Purple, Orange}

// PaletteSize returns the number of pads for a difficulty: 4, 5 or 6.
func PaletteSize(d config.Difficulty) int {
	return 4 + d.Rank()
}

// Palette returns the ordered pad colors for a difficulty.
// The returned slice is a fresh copy.
func Palette(d config.Difficulty) []Color {
	n := PaletteSize(d)
	p := make([]Color, n)
	copy(p, allColors[:n])
	return p
}

// Tone returns the terminal color used to draw the pad.
func (c Color) Tone() core.Color {
	switch c {
	case Red:
		return core.ColorBrightRed
	case Blue:
		return core.ColorBrightBlue
	case Green:
		return core.ColorBrightGreen
	case Yellow:
		return core.ColorBrightYellow
	case Purple:
		return core.ColorMagenta
	case Orange:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

func indexOf(colors []Color, c Color) int {
	for i, v := range colors {
		if v == c {
			return i
		}
	}
	return -1
}

package core

// Color is the foreground color of a screen cell.
// The terminal layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota

	// Pad tones
	ColorBrightRed
	ColorBrightBlue
	ColorBrightGreen
	ColorBrightYellow
	ColorMagenta
	ColorOrange

	// Text
	ColorBrightWhite
	ColorGray
	ColorDim // Secondary text
)

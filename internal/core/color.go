package core

import "strings"

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the rendering layer.
type Color uint8

// Predefined colors for puzzle elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// TokenPalette maps token color indices to display colors.
// Order matters: the engine identifies tokens by index, not by hue.
var TokenPalette = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
}

// ParseColor converts a color name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "default", "none":
		return ColorDefault, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "bright-red":
		return ColorBrightRed, true
	case "bright-green":
		return ColorBrightGreen, true
	case "bright-yellow":
		return ColorBrightYellow, true
	case "bright-blue":
		return ColorBrightBlue, true
	case "bright-magenta":
		return ColorBrightMagenta, true
	case "bright-cyan":
		return ColorBrightCyan, true
	case "bright-white":
		return ColorBrightWhite, true
	case "orange":
		return ColorOrange, true
	case "gray", "grey":
		return ColorGray, true
	case "dark-gray", "dark-grey":
		return ColorDarkGray, true
	default:
		return ColorDefault, false
	}
}

// TokenColor returns the display color for a token color index.
// Indices outside the palette wrap around, so any palette size the
// engine supports stays renderable.
func TokenColor(index int) Color {
	if len(TokenPalette) == 0 || index < 0 {
		return ColorDefault
	}
	return TokenPalette[index%len(TokenPalette)]
}

package core

// Color is a palette entry for draw commands and screen cells.
type Color uint8

const (
	ColorDefault Color = iota // Terminal's own color
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
	colorCount
)

// xterm256 holds the xterm-256 index of each color. ColorDefault has none.
var xterm256 = [colorCount]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// Xterm256 returns the xterm-256 palette index of c. It reports false for
// ColorDefault and unknown values, which hosts leave to the terminal.
func (c Color) Xterm256() (int, bool) {
	if c >= colorCount || xterm256[c] < 0 {
		return 0, false
	}
	return xterm256[c], true
}

// heatRamp runs from easy (green) to hard (red).
var heatRamp = [...]Color{ColorBrightGreen, ColorGreen, ColorYellow, ColorOrange, ColorRed, ColorBrightRed}

// Heat picks a color on the green-to-red ramp for a level in [0, 1].
func Heat(level float64) Color {
	level = ClampF(level, 0, 1)
	idx := int(level * float64(len(heatRamp)-1))
	return heatRamp[idx]
}

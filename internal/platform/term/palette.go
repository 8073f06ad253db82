package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/birdjam/internal/core"
)

// tcellColor maps a core color to its xterm-256 palette entry. It reports
// false for ColorDefault, which leaves the terminal color untouched.
func tcellColor(c core.Color) (tcell.Color, bool) {
	idx, ok := c.Xterm256()
	if !ok {
		return tcell.ColorDefault, false
	}
	return tcell.PaletteColor(idx), true
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/birdjam/internal/core"
)

// lipColor converts a core color to its lipgloss xterm-256 color.
func lipColor(c core.Color) (lipgloss.Color, bool) {
	idx, ok := c.Xterm256()
	if !ok {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(idx)), true
}

// cellStyle returns the style for a foreground on the frame background.
// ColorDefault leaves the terminal's own color in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipColor(fg); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipColor(bg); ok {
		st = st.Background(c)
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen, bg core.Color) string {
	styles := make(map[core.Color]lipgloss.Style)
	styleOf := func(fg core.Color) lipgloss.Style {
		st, ok := styles[fg]
		if !ok {
			st = cellStyle(fg, bg)
			styles[fg] = st
		}
		return st
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleOf(start).Render(run.String()))
		}
	}
	return sb.String()
}

package core

import "math"

// Default fill runes used when a command does not set its own glyph.
const (
	GlyphSolid = '█'
	GlyphLine  = '·'
)

// Rasterize paints the draw list onto the screen, scaling world coordinates
// to the screen's cell grid. The screen is cleared first.
//
// Shapes always cover at least one cell so that thin objects (a 15px coin
// on an 80-column terminal) stay visible.
func (l *DrawList) Rasterize(s *Screen) {
	s.Clear()
	if l.Width <= 0 || l.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}

	sx := float64(s.Width()) / l.Width
	sy := float64(s.Height()) / l.Height

	for _, cmd := range l.Cmds {
		switch cmd.Kind {
		case CmdRect:
			rasterRect(s, cmd, sx, sy)
		case CmdEllipse:
			rasterEllipse(s, cmd, sx, sy)
		case CmdLine:
			rasterLine(s, cmd, sx, sy)
		case CmdText:
			rasterText(s, cmd, sx, sy)
		}
	}
}

// cellSpan converts a world interval [lo, hi) into a cell interval [a, b)
// with at least one cell.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale - 1e-9))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func glyphOr(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}

func rasterRect(s *Screen, cmd DrawCmd, sx, sy float64) {
	if cmd.Box.Empty() {
		return
	}
	x0, x1 := cellSpan(cmd.Box.X, cmd.Box.Right(), sx)
	y0, y1 := cellSpan(cmd.Box.Y, cmd.Box.Bottom(), sy)
	s.FillRect(x0, y0, x1-x0, y1-y0, Cell{Rune: glyphOr(cmd.Glyph, GlyphSolid), Color: cmd.Color})
}

func rasterEllipse(s *Screen, cmd DrawCmd, sx, sy float64) {
	if cmd.Box.Empty() {
		return
	}
	cell := Cell{Rune: glyphOr(cmd.Glyph, GlyphSolid), Color: cmd.Color}
	c := cmd.Box.Center()
	rx, ry := cmd.Box.W/2, cmd.Box.H/2

	x0, x1 := cellSpan(cmd.Box.X, cmd.Box.Right(), sx)
	y0, y1 := cellSpan(cmd.Box.Y, cmd.Box.Bottom(), sy)

	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			// Cell centre back in world space.
			wx := (float64(cx) + 0.5) / sx
			wy := (float64(cy) + 0.5) / sy
			dx, dy := (wx-c.X)/rx, (wy-c.Y)/ry
			if dx*dx+dy*dy <= 1 {
				s.SetCell(cx, cy, cell)
				painted = true
			}
		}
	}
	if !painted {
		s.SetCell(int(math.Floor(c.X*sx)), int(math.Floor(c.Y*sy)), cell)
	}
}

func rasterLine(s *Screen, cmd DrawCmd, sx, sy float64) {
	cell := Cell{Rune: glyphOr(cmd.Glyph, GlyphLine), Color: cmd.Color}
	ax, ay := cmd.From.X*sx, cmd.From.Y*sy
	bx, by := cmd.To.X*sx, cmd.To.Y*sy

	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		s.SetCell(int(math.Floor(ax)), int(math.Floor(ay)), cell)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.SetCell(int(math.Floor(ax+(bx-ax)*t)), int(math.Floor(ay+(by-ay)*t)), cell)
	}
}

func rasterText(s *Screen, cmd DrawCmd, sx, sy float64) {
	n := len([]rune(cmd.Text))
	x := int(math.Floor(cmd.From.X * sx))
	y := int(math.Floor(cmd.From.Y * sy))
	switch cmd.Align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	s.DrawText(x, y, cmd.Text, cmd.Color)
}

package core

// CmdKind identifies a drawing primitive.
type CmdKind uint8

const (
	CmdRect CmdKind = iota
	CmdEllipse
	CmdLine
	CmdText
)

// String returns a human-readable name for the command kind.
func (k CmdKind) String() string {
	switch k {
	case CmdRect:
		return "Rect"
	case CmdEllipse:
		return "Ellipse"
	case CmdLine:
		return "Line"
	case CmdText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Align controls horizontal text placement relative to the anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawCmd is a single drawing primitive in world coordinates.
//
// Rect and Ellipse use Box (the ellipse is inscribed in it). Line runs
// From -> To. Text is anchored at From with the given alignment.
type DrawCmd struct {
	Kind  CmdKind
	Box   Rect
	From  Vec
	To    Vec
	Text  string
	Align Align
	Color Color
	Glyph rune // Fill rune; zero picks the rasterizer default
}

// DrawList is the ordered list of primitives one render pass produces.
// Commands are painted in order, so later commands cover earlier ones.
type DrawList struct {
	Width      float64 // World width the coordinates refer to
	Height     float64 // World height the coordinates refer to
	Background Color
	Cmds       []DrawCmd
}

// NewDrawList creates an empty draw list for a world of the given size.
func NewDrawList(width, height float64, bg Color) *DrawList {
	return &DrawList{
		Width:      width,
		Height:     height,
		Background: bg,
		Cmds:       make([]DrawCmd, 0, 32),
	}
}

// Rect queues a filled rectangle.
func (l *DrawList) Rect(r Rect, c Color) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: CmdRect, Box: r, Color: c})
}

// Ellipse queues a filled ellipse centered at c with the given diameters.
func (l *DrawList) Ellipse(center Vec, w, h float64, c Color) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: CmdEllipse, Box: CenteredRect(center, w, h), Color: c})
}

// Glyph queues a filled ellipse painted with a specific rune.
func (l *DrawList) Glyph(center Vec, size float64, r rune, c Color) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: CmdEllipse, Box: CenteredRect(center, size, size), Color: c, Glyph: r})
}

// Line queues a line segment.
func (l *DrawList) Line(from, to Vec, c Color) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: CmdLine, From: from, To: to, Color: c})
}

// Text queues a text label anchored at the given point.
func (l *DrawList) Text(at Vec, s string, align Align, c Color) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: CmdText, From: at, Text: s, Align: align, Color: c})
}

// Texts returns every text label in draw order.
func (l *DrawList) Texts() []string {
	var out []string
	for _, cmd := range l.Cmds {
		if cmd.Kind == CmdText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

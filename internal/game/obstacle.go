package game

import "github.com/vovakirdan/birdjam/internal/core"

// Shape is the geometry of an obstacle.
type Shape int

const (
	ShapeGapWall Shape = iota // Full-length wall with one gap
	ShapeBar                  // Single bar of length GapSize starting at GapStart
)

// Heading is the direction an obstacle travels in.
type Heading int

const (
	HeadingLeft Heading = iota
	HeadingRight
	HeadingUp
	HeadingDown
)

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the heading moves along the x axis.
func (h Heading) Horizontal() bool {
	return h == HeadingLeft || h == HeadingRight
}

// Obstacle is a pipe (gap wall) or bar.
//
// Pos is the travel-axis coordinate of the obstacle's top or left side:
// x for walls moving left/right, y for walls moving up/down. GapStart and
// GapSize are measured along the cross axis, whose full length is Span.
// Walls moving sideways are vertical; walls moving up or down are horizontal.
type Obstacle struct {
	ID        int
	Shape     Shape
	Heading   Heading
	Pos       float64
	Thickness float64
	GapStart  float64
	GapSize   float64
	Span      float64
	Drift     float64 // Per-tick GapStart change (wavy pipes)
	Scored    bool
	Stage     int // Difficulty stage index the obstacle was spawned at
}

// TopHeight is the length of the wall before the gap.
func (o Obstacle) TopHeight() float64 {
	return o.GapStart
}

// BottomHeight is the length of the wall after the gap.
func (o Obstacle) BottomHeight() float64 {
	return o.Span - (o.GapStart + o.GapSize)
}

// Blocks returns the solid rectangles of the obstacle.
func (o Obstacle) Blocks() []core.Rect {
	if o.Shape == ShapeBar {
		if o.Heading.Horizontal() {
			return []core.Rect{core.NewRect(o.Pos, o.GapStart, o.Thickness, o.GapSize)}
		}
		return []core.Rect{core.NewRect(o.GapStart, o.Pos, o.GapSize, o.Thickness)}
	}

	gapEnd := o.GapStart + o.GapSize
	if o.Heading.Horizontal() {
		return []core.Rect{
			core.NewRect(o.Pos, 0, o.Thickness, o.TopHeight()),
			core.NewRect(o.Pos, gapEnd, o.Thickness, o.BottomHeight()),
		}
	}
	return []core.Rect{
		core.NewRect(0, o.Pos, o.TopHeight(), o.Thickness),
		core.NewRect(gapEnd, o.Pos, o.BottomHeight(), o.Thickness),
	}
}

// Advance moves the obstacle speed units along its heading.
func (o Obstacle) Advance(speed float64) Obstacle {
	switch o.Heading {
	case HeadingLeft, HeadingUp:
		o.Pos -= speed
	case HeadingRight, HeadingDown:
		o.Pos += speed
	}
	return o
}

// Wobble applies the vertical drift and reverses it once GapStart leaves
// [lo, hi].
func (o Obstacle) Wobble(lo, hi float64) Obstacle {
	if o.Drift == 0 {
		return o
	}
	o.GapStart += o.Drift
	if o.GapStart < lo || o.GapStart > hi {
		o.Drift = -o.Drift
	}
	return o
}

// Passed reports whether the obstacle's trailing edge has moved past the
// entity's centre along the heading.
func (o Obstacle) Passed(e Entity) bool {
	switch o.Heading {
	case HeadingLeft:
		return o.Pos+o.Thickness < e.Pos.X
	case HeadingRight:
		return o.Pos > e.Pos.X
	case HeadingUp:
		return o.Pos+o.Thickness < e.Pos.Y
	case HeadingDown:
		return o.Pos > e.Pos.Y
	default:
		return false
	}
}

// Gone reports whether the obstacle has fully left the bounds.
func (o Obstacle) Gone(b Bounds) bool {
	switch o.Heading {
	case HeadingLeft:
		return o.Pos+o.Thickness < 0
	case HeadingRight:
		return o.Pos > b.W
	case HeadingUp:
		return o.Pos+o.Thickness < 0
	case HeadingDown:
		return o.Pos > b.H
	default:
		return true
	}
}

// PickupKind distinguishes collectibles.
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupFly
)

// Pickup is a collectible disc worth Value points.
type Pickup struct {
	ID    int
	Kind  PickupKind
	Body  Entity
	Value int
}

// Gone reports whether the pickup has left the bounds on the side it is
// moving towards. Pickups enter from outside, so the other side is ignored.
func (p Pickup) Gone(b Bounds) bool {
	r := p.Body.Size / 2
	switch {
	case p.Body.Vel.X < 0:
		return p.Body.Pos.X < -r
	case p.Body.Vel.X > 0:
		return p.Body.Pos.X > b.W+r
	default:
		return false
	}
}

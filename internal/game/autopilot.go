package game

import (
	"math"

	"github.com/vovakirdan/birdjam/internal/core"
)

// Autopilot produces input for a session without a player: it picks a mode
// from the menu, starts the run and then plays with simple heuristics. It is
// used by headless runs and the attract screen; it is not meant to be good.
type Autopilot struct {
	mode Mode
}

// NewAutopilot creates an autopilot that plays mode m.
func NewAutopilot(m Mode) *Autopilot {
	return &Autopilot{mode: m}
}

// Input returns the input frame for the session's next tick.
func (a *Autopilot) Input(s *Session) core.InputFrame {
	in := core.NewInputFrame()
	switch s.State().Kind {
	case StateMenu:
		in.KeyPress(a.mode.Key())
	case StateIntro:
		in.PointerPress(core.Vec{})
	case StatePlay:
		a.play(s, &in)
	case StateWin, StateLose:
	}
	return in
}

func (a *Autopilot) play(s *Session, in *core.InputFrame) {
	p := s.Player()
	switch s.State().Mode.Spec().Click {
	case ClickFlap:
		target := a.targetY(s)
		if p.Pos.Y > target+20 && p.Vel.Y > 0 {
			in.PointerPress(p.Pos)
		}
		if p.Steer > 0 {
			a.steerToward(in, p.Pos.X, a.targetX(s))
		}
	case ClickToggleGravity:
		target := a.targetY(s)
		if (p.Direction > 0 && p.Pos.Y > target+30 && p.Vel.Y > 0) ||
			(p.Direction < 0 && p.Pos.Y < target-30 && p.Vel.Y < 0) {
			in.PointerPress(p.Pos)
		}
	case ClickTongue:
		a.hunt(s, in)
	case ClickNone:
		a.dodge(s, in)
	}
}

// targetY is the centre of the gap of the nearest vertical wall still ahead
// of the player, or mid-height.
func (a *Autopilot) targetY(s *Session) float64 {
	p := s.Player()
	best, dist := s.Bounds().H/2, math.Inf(1)
	for _, o := range s.Obstacles() {
		if !o.Heading.Horizontal() || o.Passed(p) {
			continue
		}
		d := math.Abs(o.Pos + o.Thickness/2 - p.Pos.X)
		if d < dist {
			best, dist = o.GapStart+o.GapSize/2, d
		}
	}
	return best
}

// targetX is the gap centre of the nearest horizontal wall, or mid-width.
func (a *Autopilot) targetX(s *Session) float64 {
	p := s.Player()
	best, dist := s.Bounds().W/2, math.Inf(1)
	for _, o := range s.Obstacles() {
		if o.Heading.Horizontal() || o.Passed(p) {
			continue
		}
		d := math.Abs(o.Pos + o.Thickness/2 - p.Pos.Y)
		if d < dist {
			best, dist = o.GapStart+o.GapSize/2, d
		}
	}
	return best
}

// dodge steers away from the nearest bar rising towards the player.
func (a *Autopilot) dodge(s *Session, in *core.InputFrame) {
	p := s.Player()
	b := s.Bounds()
	margin := p.Size
	goal := b.W / 2
	nearest := math.Inf(1)
	for _, o := range s.Obstacles() {
		if o.Shape != ShapeBar || o.Passed(p) {
			continue
		}
		if d := o.Pos - p.Pos.Y; d < nearest {
			nearest = d
			left := o.GapStart - margin
			right := o.GapStart + o.GapSize + margin
			if o.GapStart > b.W-(o.GapStart+o.GapSize) {
				goal = math.Max(left, margin*1.5)
			} else {
				goal = math.Min(right, b.W-margin*1.5)
			}
		}
	}
	a.steerToward(in, p.Pos.X, goal)
}

// hunt moves the frog under where the fly will be when the tongue reaches
// it and launches the tongue.
func (a *Autopilot) hunt(s *Session, in *core.InputFrame) {
	t := s.Tongue()
	for _, p := range s.Pickups() {
		if p.Kind != PickupFly {
			continue
		}
		ticks := math.Max(t.RestY-p.Body.Pos.Y, 0) / t.Speed
		x := p.Body.Pos.X + p.Body.Vel.X*ticks
		if x > s.Bounds().W {
			return
		}
		in.SetPointer(core.Vec{X: x, Y: s.Player().Pos.Y})
		if t.State == TongueIdle {
			in.PointerPress(core.Vec{X: x})
		}
		return
	}
}

func (a *Autopilot) steerToward(in *core.InputFrame, x, goal float64) {
	switch {
	case goal < x-2:
		in.Hold(core.KeyLeft)
	case goal > x+2:
		in.Hold(core.KeyRight)
	}
}

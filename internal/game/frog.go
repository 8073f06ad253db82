package game

import "github.com/vovakirdan/birdjam/internal/core"

// TongueState is the phase of the frog's tongue.
type TongueState int

const (
	TongueIdle TongueState = iota
	TongueOutbound
	TongueInbound
)

// String returns the state name.
func (s TongueState) String() string {
	switch s {
	case TongueIdle:
		return "idle"
	case TongueOutbound:
		return "outbound"
	case TongueInbound:
		return "inbound"
	default:
		return "unknown"
	}
}

// Tongue is the frog's tongue tip. It shoots up from RestY, bounces off the
// top of the playfield and comes back.
type Tongue struct {
	Tip   core.Vec
	Size  float64
	Speed float64
	RestY float64
	State TongueState
}

// Launch starts an idle tongue. It reports false if the tongue is already out.
func (t Tongue) Launch() (Tongue, bool) {
	if t.State != TongueIdle {
		return t, false
	}
	t.State = TongueOutbound
	return t, true
}

// Retract sends the tongue back.
func (t Tongue) Retract() Tongue {
	if t.State != TongueIdle {
		t.State = TongueInbound
	}
	return t
}

// Update follows the frog horizontally and moves the tip for one tick.
func (t Tongue) Update(anchorX float64) Tongue {
	t.Tip.X = anchorX
	switch t.State {
	case TongueOutbound:
		t.Tip.Y -= t.Speed
		if t.Tip.Y <= 0 {
			t.State = TongueInbound
		}
	case TongueInbound:
		t.Tip.Y += t.Speed
		if t.Tip.Y >= t.RestY {
			t.Tip.Y = t.RestY
			t.State = TongueIdle
		}
	}
	return t
}

// Circle returns the tip's collision disc.
func (t Tongue) Circle() core.Circle {
	return core.Circle{C: t.Tip, R: t.Size / 2}
}

// Catches reports whether the tip touches the pickup.
func (t Tongue) Catches(p Pickup) bool {
	return t.Circle().Overlaps(p.Body.Circle())
}

package game

import (
	"math"

	"github.com/vovakirdan/birdjam/internal/core"
)

// MotionPolicy selects how an entity moves each tick.
type MotionPolicy int

const (
	MotionConstant        MotionPolicy = iota // pos += vel
	MotionGravity                             // vel.y += gravity, clamped to the bounds
	MotionReversedGravity                     // vel.y += gravity * direction, clamped
	MotionSinusoidal                          // y oscillates around BaseY, x drifts by vel.x
)

// String returns a human-readable name for the policy.
func (p MotionPolicy) String() string {
	switch p {
	case MotionConstant:
		return "constant"
	case MotionGravity:
		return "gravity"
	case MotionReversedGravity:
		return "reversed-gravity"
	case MotionSinusoidal:
		return "sinusoidal"
	default:
		return "unknown"
	}
}

// Bounds is the size of the playfield. The origin is the top-left corner.
type Bounds struct {
	W, H float64
}

// Controls are the held directional inputs for one entity update.
type Controls struct {
	Left  bool
	Right bool
}

// Entity is a moving actor: the player bird, the frog, a coin or the fly.
// It is a value type; Update returns the next state.
type Entity struct {
	Pos    core.Vec
	Size   float64 // Diameter
	Vel    core.Vec
	Motion MotionPolicy

	Gravity      float64
	Direction    float64 // +1 falls down, -1 falls up (reversed gravity only)
	JumpStrength float64

	BaseY      float64
	Angle      float64
	AngleSpeed float64
	Amplitude  float64

	Steer float64 // Horizontal step per tick while a direction is held; 0 disables
}

// Update advances the entity by one tick under its motion policy.
func (e Entity) Update(b Bounds, c Controls) Entity {
	switch e.Motion {
	case MotionConstant:
		e.Pos = e.Pos.Add(e.Vel)
	case MotionGravity:
		e.Vel.Y += e.Gravity
		e.Pos.Y = core.ClampF(e.Pos.Y+e.Vel.Y, 0, b.H)
	case MotionReversedGravity:
		e.Vel.Y += e.Gravity * e.Direction
		e.Pos.Y = core.ClampF(e.Pos.Y+e.Vel.Y, 0, b.H)
	case MotionSinusoidal:
		e.Pos.Y = e.BaseY + math.Sin(e.Angle)*e.Amplitude
		e.Angle += e.AngleSpeed
		e.Pos.X += e.Vel.X
	}

	if e.Steer > 0 && (c.Left || c.Right) {
		if c.Left {
			e.Pos.X -= e.Steer
		}
		if c.Right {
			e.Pos.X += e.Steer
		}
		e.Pos.X = core.ClampF(e.Pos.X, 0, b.W)
	}
	return e
}

// Flap sets the vertical velocity to the jump strength.
func (e Entity) Flap() Entity {
	e.Vel.Y = e.JumpStrength
	return e
}

// ToggleGravity flips the gravity direction and re-primes the velocity so
// the reversal is felt immediately.
func (e Entity) ToggleGravity() Entity {
	if e.Direction == 0 {
		e.Direction = 1
	}
	e.Direction = -e.Direction
	e.Vel.Y = e.JumpStrength * e.Direction
	return e
}

// Box returns the entity's collision rectangle.
func (e Entity) Box() core.Rect {
	return core.CenteredRect(e.Pos, e.Size, e.Size)
}

// Circle returns the entity's collision disc.
func (e Entity) Circle() core.Circle {
	return core.Circle{C: e.Pos, R: e.Size / 2}
}

package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/birdjam/internal/core"
)

var testBounds = Bounds{W: 400, H: 600}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEntityGravity(t *testing.T) {
	e := Entity{Pos: core.Vec{X: 200, Y: 300}, Motion: MotionGravity, Gravity: 0.6}

	e = e.Update(testBounds, Controls{})
	if !approx(e.Vel.Y, 0.6) || !approx(e.Pos.Y, 300.6) {
		t.Errorf("after one tick vel=%v pos=%v, expected 0.6 and 300.6", e.Vel.Y, e.Pos.Y)
	}

	e = e.Update(testBounds, Controls{})
	if !approx(e.Vel.Y, 1.2) || !approx(e.Pos.Y, 301.8) {
		t.Errorf("after two ticks vel=%v pos=%v, expected 1.2 and 301.8", e.Vel.Y, e.Pos.Y)
	}
}

func TestEntityGravityClampsToBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vel  float64
		want float64
	}{
		{"bottom", 599, 5, 600},
		{"top", 1, -10, 0},
		{"inside", 300, 1, 300 + 1 + 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Pos: core.Vec{Y: tt.y}, Vel: core.Vec{Y: tt.vel}, Motion: MotionGravity, Gravity: 0.6}
			e = e.Update(testBounds, Controls{})
			if !approx(e.Pos.Y, tt.want) {
				t.Errorf("Pos.Y = %v, expected %v", e.Pos.Y, tt.want)
			}
		})
	}
}

func TestEntityReversedGravityToggle(t *testing.T) {
	e := Entity{
		Pos:          core.Vec{X: 200, Y: 300},
		Vel:          core.Vec{Y: 2.5},
		Motion:       MotionReversedGravity,
		Gravity:      0.6,
		Direction:    1,
		JumpStrength: -10,
	}

	e = e.ToggleGravity()
	if e.Direction != -1 {
		t.Fatalf("Direction = %v, expected -1", e.Direction)
	}
	if e.Vel.Y != -10*-1 {
		t.Errorf("Vel.Y = %v, expected jumpStrength * -1 = 10", e.Vel.Y)
	}

	// Subsequent ticks apply velocity += gravity * -1.
	vel, y := e.Vel.Y, e.Pos.Y
	for i := 0; i < 3; i++ {
		e = e.Update(testBounds, Controls{})
		vel += 0.6 * -1
		y += vel
		if !approx(e.Vel.Y, vel) || !approx(e.Pos.Y, y) {
			t.Errorf("tick %d: vel=%v pos=%v, expected %v and %v", i, e.Vel.Y, e.Pos.Y, vel, y)
		}
	}

	e = e.ToggleGravity()
	if e.Direction != 1 || e.Vel.Y != -10 {
		t.Errorf("second toggle: direction=%v vel=%v, expected 1 and -10", e.Direction, e.Vel.Y)
	}
}

func TestEntitySinusoidal(t *testing.T) {
	e := Entity{
		Pos:        core.Vec{X: 10, Y: 0},
		Vel:        core.Vec{X: 3},
		Motion:     MotionSinusoidal,
		BaseY:      100,
		Angle:      math.Pi / 2,
		AngleSpeed: 0.1,
		Amplitude:  20,
		Gravity:    5, // ignored
	}

	e = e.Update(testBounds, Controls{})
	if !approx(e.Pos.Y, 120) {
		t.Errorf("Pos.Y = %v, expected 120", e.Pos.Y)
	}
	if !approx(e.Angle, math.Pi/2+0.1) {
		t.Errorf("Angle = %v, expected pi/2 + 0.1", e.Angle)
	}
	if e.Pos.X != 13 {
		t.Errorf("Pos.X = %v, expected 13", e.Pos.X)
	}
	if e.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, sinusoidal motion should not touch it", e.Vel.Y)
	}
}

func TestEntitySteer(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		steer float64
		ctl   Controls
		want  float64
	}{
		{"left", 100, 3, Controls{Left: true}, 97},
		{"right", 100, 3, Controls{Right: true}, 103},
		{"both cancel", 100, 3, Controls{Left: true, Right: true}, 100},
		{"clamp left", 1, 3, Controls{Left: true}, 0},
		{"clamp right", 399, 3, Controls{Right: true}, 400},
		{"no steer", 100, 0, Controls{Left: true}, 100},
		{"not held", 100, 3, Controls{}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Pos: core.Vec{X: tt.x, Y: 200}, Motion: MotionConstant, Steer: tt.steer}
			e = e.Update(testBounds, tt.ctl)
			if e.Pos.X != tt.want {
				t.Errorf("Pos.X = %v, expected %v", e.Pos.X, tt.want)
			}
		})
	}
}

func TestEntityFlap(t *testing.T) {
	e := Entity{Vel: core.Vec{Y: 7}, JumpStrength: -10}
	if got := e.Flap().Vel.Y; got != -10 {
		t.Errorf("Flap().Vel.Y = %v, expected -10", got)
	}
	if e.Vel.Y != 7 {
		t.Error("Flap should not modify the receiver")
	}
}

func TestEntityBox(t *testing.T) {
	e := Entity{Pos: core.Vec{X: 100, Y: 50}, Size: 30}
	b := e.Box()
	if b.X != 85 || b.Y != 35 || b.W != 30 || b.H != 30 {
		t.Errorf("Box() = %+v, expected {85 35 30 30}", b)
	}
	if c := e.Circle(); c.R != 15 || c.C != e.Pos {
		t.Errorf("Circle() = %+v, expected radius 15 at the centre", c)
	}
}

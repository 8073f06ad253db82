package core

import "time"

// Tick rates a host accepts.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// RuntimeConfig describes how a host runs a session. The world has fixed
// dimensions; ScreenW and ScreenH only size the cell grid it is
// rasterized into.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second
	Seed      int64 // 0 lets the platform layer pick one from the clock
	HoldTicks int   // Ticks a directional key press counts as held
}

// DefaultConfig returns the settings used for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		HoldTicks: 15,
	}
}

// Normalize fills unset fields from DefaultConfig and clamps the tick rate.
// An unset HoldTicks becomes a quarter second of ticks.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate == 0 {
		c.TickRate = def.TickRate
	}
	c.TickRate = min(max(c.TickRate, MinTickRate), MaxTickRate)
	if c.HoldTicks <= 0 {
		c.HoldTicks = max(c.TickRate/4, 1)
	}
	return c
}

// FrameInterval returns the wall-clock length of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := min(max(c.TickRate, MinTickRate), MaxTickRate)
	return time.Second / time.Duration(rate)
}

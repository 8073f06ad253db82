package platform

import "github.com/vovakirdan/birdjam/internal/core"

// HoldTracker emulates held keys on terminals that only report key-down.
// A press keeps the key held for a number of ticks; auto-repeat refreshes
// it, and the opposite direction cancels it at once.
type HoldTracker struct {
	window    int
	remaining map[core.Key]int
}

var opposite = map[core.Key]core.Key{
	core.KeyLeft:  core.KeyRight,
	core.KeyRight: core.KeyLeft,
}

// NewHoldTracker creates a tracker that holds each press for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{window: window, remaining: make(map[core.Key]int)}
}

// Press records a key-down (or an auto-repeat) for k.
func (h *HoldTracker) Press(k core.Key) {
	h.remaining[k] = h.window
	if o, ok := opposite[k]; ok {
		delete(h.remaining, o)
	}
}

// Apply marks the currently held keys on frame and ages them by one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for k, n := range h.remaining {
		frame.Hold(k)
		if n <= 1 {
			delete(h.remaining, k)
		} else {
			h.remaining[k] = n - 1
		}
	}
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}

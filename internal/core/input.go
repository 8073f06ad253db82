package core

// Key identifies a key press. Printable keys use their character ("0", "p"),
// special keys use the names the hosts report ("left", "right").
type Key string

// Keys the game core understands. Mode selection uses the digit keys.
const (
	KeyNone  Key = ""
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyPause Key = "p"
)

// InputKind distinguishes the discrete input events a host can deliver.
type InputKind int

const (
	InputPointerPress InputKind = iota // Mouse click, or space/enter on a keyboard
	InputKeyPress                      // Key press with identifier
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputPointerPress:
		return "PointerPress"
	case InputKeyPress:
		return "KeyPress"
	default:
		return "Unknown"
	}
}

// InputEvent is a single discrete input event.
type InputEvent struct {
	Kind InputKind
	Key  Key // Set for InputKeyPress
	At   Vec // World position for InputPointerPress (zero if unknown)
}

// MaxQueuedEvents bounds the per-tick event queue. Events pushed beyond it
// are dropped so that a burst of input cannot grow a tick without limit.
const MaxQueuedEvents = 8

// InputFrame represents the input delivered with a single simulation tick:
// an ordered, bounded queue of discrete events plus the set of keys held
// down during the tick and the pointer position if it moved.
type InputFrame struct {
	events  []InputEvent
	held    map[Key]bool
	pointer Vec
	moved   bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		events: make([]InputEvent, 0, MaxQueuedEvents),
		held:   make(map[Key]bool),
	}
}

// Push appends an event to the queue.
// Returns false if the queue is full and the event was dropped.
func (f *InputFrame) Push(e InputEvent) bool {
	if len(f.events) >= MaxQueuedEvents {
		return false
	}
	f.events = append(f.events, e)
	return true
}

// PointerPress queues a pointer press at the given world position.
func (f *InputFrame) PointerPress(at Vec) bool {
	return f.Push(InputEvent{Kind: InputPointerPress, At: at})
}

// KeyPress queues a key press.
func (f *InputFrame) KeyPress(k Key) bool {
	return f.Push(InputEvent{Kind: InputKeyPress, Key: k})
}

// Events returns the queued events in delivery order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Hold marks a key as held down for this tick.
func (f *InputFrame) Hold(k Key) {
	if f.held == nil {
		f.held = make(map[Key]bool)
	}
	f.held[k] = true
}

// Held returns true if the key is held down this tick.
func (f InputFrame) Held(k Key) bool {
	if f.held == nil {
		return false
	}
	return f.held[k]
}

// SetPointer records a pointer move during this frame.
func (f *InputFrame) SetPointer(at Vec) {
	f.pointer = at
	f.moved = true
}

// Pointer returns the last known pointer position and whether it moved
// during this frame. A pointer that stays put does not override steering.
func (f InputFrame) Pointer() (Vec, bool) {
	return f.pointer, f.moved
}

// Clear resets events, held keys and the pointer move for the next frame.
// The last pointer position is kept.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
	clear(f.held)
	f.moved = false
}

package game

import "github.com/vovakirdan/birdjam/internal/config"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventPaused
	EventResumed
	EventFlap
	EventGravityToggled
	EventTongueLaunched
	EventSpawned
	EventCoinSkipped // A coin was due but no safe spot was found
	EventEdgeChanged
	EventScored
	EventCollected
	EventCaught
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventFlap:
		return "flap"
	case EventGravityToggled:
		return "gravity"
	case EventTongueLaunched:
		return "tongue"
	case EventSpawned:
		return "spawn"
	case EventCoinSkipped:
		return "coin-skipped"
	case EventEdgeChanged:
		return "edge"
	case EventScored:
		return "scored"
	case EventCollected:
		return "collected"
	case EventCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Event is a notification for hosts (logging, sound). The core never
// depends on anyone consuming it.
type Event struct {
	Kind   EventKind
	From   State // EventStateChanged
	To     State // EventStateChanged
	Score  int   // Score after the event
	Points int   // Points gained (scored, collected, caught)
	ID     int   // Obstacle or pickup ID
	Edge   Edge  // EventEdgeChanged
}

// Snapshot is a read-only view of the session after a tick.
type Snapshot struct {
	State    State
	Score    int
	Paused   bool
	Tick     int // Play ticks since the run started
	Stage    config.DifficultyStage
	Level    float64 // 0 (widest gap) .. 1 (narrowest)
	WinScore int     // 0 if the mode has no win condition
}

// GameOver reports whether the run has ended.
func (s Snapshot) GameOver() bool {
	return s.State.Over()
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	State  Snapshot
	Events []Event
}

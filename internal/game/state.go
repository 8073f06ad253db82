package game

import (
	"fmt"

	"github.com/vovakirdan/birdjam/internal/core"
)

// StateKind enumerates the screens of the state machine.
type StateKind int

const (
	StateMenu StateKind = iota
	StateIntro
	StatePlay
	StateWin
	StateLose
)

// String returns the state name.
func (k StateKind) String() string {
	switch k {
	case StateMenu:
		return "menu"
	case StateIntro:
		return "intro"
	case StatePlay:
		return "play"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// State is the active screen. Mode is meaningful for Intro and Play, and
// remembers the last mode played on Win and Lose.
type State struct {
	Kind StateKind
	Mode Mode
}

// String returns e.g. "menu", "gravityIntro", "gravityPlay", "lose".
func (s State) String() string {
	switch s.Kind {
	case StateIntro:
		return s.Mode.String() + "Intro"
	case StatePlay:
		return s.Mode.String() + "Play"
	default:
		return s.Kind.String()
	}
}

// Over reports whether the run has ended.
func (s State) Over() bool {
	return s.Kind == StateWin || s.Kind == StateLose
}

// On applies an input event to the state and returns the next state and
// whether a transition happened. Play-time input (flaps, pause) does not
// change the state and is handled by the session.
//
//	Menu  --[mode key]--> Intro(mode)
//	Intro --[click]-----> Play(mode)
//	Win   --[click]-----> Menu
//	Lose  --[click]-----> Menu
//
// It panics on a state outside the enum.
func (s State) On(ev core.InputEvent) (State, bool) {
	switch s.Kind {
	case StateMenu:
		if ev.Kind != core.InputKeyPress {
			return s, false
		}
		m, ok := ModeFromKey(ev.Key)
		if !ok {
			return s, false
		}
		return State{Kind: StateIntro, Mode: m}, true
	case StateIntro:
		if ev.Kind != core.InputPointerPress {
			return s, false
		}
		return State{Kind: StatePlay, Mode: s.Mode}, true
	case StatePlay:
		return s, false
	case StateWin, StateLose:
		if ev.Kind != core.InputPointerPress {
			return s, false
		}
		return State{Kind: StateMenu, Mode: s.Mode}, true
	default:
		panic(fmt.Sprintf("game: unknown state %d", int(s.Kind)))
	}
}

// Package game implements the birdjam game core: a mode-parameterized state
// machine (menu, intro, play, win, lose) driving one player entity, periodic
// obstacle spawning and collision evaluation.
//
// The core is host-agnostic. Hosts feed it one core.InputFrame per tick and
// paint the core.DrawList it renders.
package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/birdjam/internal/core"
)

// Mode is a gameplay variant. The set is closed.
type Mode int

const (
	ModeFlappy Mode = iota
	ModeGravity
	ModeWavy
	ModeProgress
	ModeFalling
	ModeGold
	ModeChaos
	ModeFrog
	modeCount
)

// ClickAction is what a pointer press does during play.
type ClickAction int

const (
	ClickNone ClickAction = iota
	ClickFlap
	ClickToggleGravity
	ClickTongue
)

// ModeSpec fixes the policies a mode plays with.
type ModeSpec struct {
	Name           string
	Label          string // Menu entry
	Title          string
	Tagline        string
	Controls       []string
	Motion         MotionPolicy
	Click          ClickAction
	Steer          bool // Left/right arrows move the player
	Spawn          SpawnKind
	Progressive    bool // Walks the full difficulty stage table
	SideWallsFatal bool
}

var modeSpecs = [modeCount]ModeSpec{
	ModeFlappy: {
		Name:     "flappy",
		Label:    "Flappy Bird",
		Title:    "FLAPPY BIRD",
		Tagline:  "Always stay flapping!",
		Controls: []string{"[CLICK] to flap your wings"},
		Motion:   MotionGravity,
		Click:    ClickFlap,
		Spawn:    SpawnPipes,
	},
	ModeGravity: {
		Name:     "gravity",
		Label:    "Gravity Bird",
		Title:    "GRAVITY BIRD",
		Tagline:  "No flapping, just gravitating!",
		Controls: []string{"[CLICK] to switch gravity"},
		Motion:   MotionReversedGravity,
		Click:    ClickToggleGravity,
		Spawn:    SpawnPipes,
	},
	ModeWavy: {
		Name:     "wavy",
		Label:    "Wavy Bird",
		Title:    "WAVY BIRD",
		Tagline:  "Keep flying, watch for the pipes!",
		Controls: []string{"[CLICK] to flap your wings"},
		Motion:   MotionGravity,
		Click:    ClickFlap,
		Spawn:    SpawnWavyPipes,
	},
	ModeProgress: {
		Name:        "progress",
		Label:       "Progress Bird",
		Title:       "PROGRESS BIRD",
		Tagline:     "Oh no! It's gonna get difficult!",
		Controls:    []string{"[CLICK] to flap your wings"},
		Motion:      MotionGravity,
		Click:       ClickFlap,
		Spawn:       SpawnPipes,
		Progressive: true,
	},
	ModeFalling: {
		Name:           "falling",
		Label:          "Falling Bird",
		Title:          "FALLING BIRD",
		Tagline:        "Oh no you're falling! Better dodge the pipes!",
		Controls:       []string{"[LEFT/RIGHT] Arrows to move"},
		Motion:         MotionConstant,
		Click:          ClickNone,
		Steer:          true,
		Spawn:          SpawnBars,
		SideWallsFatal: true,
	},
	ModeGold: {
		Name:     "gold",
		Label:    "Gold Bird",
		Title:    "COIN BIRD",
		Tagline:  "Collect golden coins for extra points!",
		Controls: []string{"[CLICK] to flap your wings"},
		Motion:   MotionGravity,
		Click:    ClickFlap,
		Spawn:    SpawnPipesAndCoins,
	},
	ModeChaos: {
		Name:     "chaos",
		Label:    "Chaos Bird",
		Title:    "CHAOS BIRD",
		Tagline:  "Pipes come from everywhere!",
		Controls: []string{"[CLICK] to flap your wings", "[LEFT/RIGHT] Arrows to move"},
		Motion:   MotionGravity,
		Click:    ClickFlap,
		Steer:    true,
		Spawn:    SpawnChaos,
	},
	ModeFrog: {
		Name:     "frog",
		Label:    "Frog Game",
		Title:    "FROG GAME",
		Tagline:  "Catch flies with your tongue!",
		Controls: []string{"[CLICK] to launch the tongue", "[LEFT/RIGHT] or mouse to move"},
		Motion:   MotionConstant,
		Click:    ClickTongue,
		Steer:    true,
		Spawn:    SpawnNone,
	},
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := Mode(0); m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// Spec returns the policies of the mode. It panics on a mode outside the
// enum: that is a programming error, never a silent no-op.
func (m Mode) Spec() ModeSpec {
	if !m.Valid() {
		panic(fmt.Sprintf("game: unknown mode %d", int(m)))
	}
	return modeSpecs[m]
}

// Name returns the config/CLI name of the mode ("flappy").
func (m Mode) Name() string {
	return m.Spec().Name
}

// Key returns the menu key that selects the mode.
func (m Mode) Key() core.Key {
	return core.Key(fmt.Sprintf("%d", int(m)))
}

// String returns the mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return m.Name()
}

// ModeFromKey maps a menu key to its mode.
func ModeFromKey(k core.Key) (Mode, bool) {
	for _, m := range Modes() {
		if m.Key() == k {
			return m, true
		}
	}
	return 0, false
}

// ParseMode accepts a mode name ("gold") or its menu key ("5").
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m, ok := ModeFromKey(core.Key(s)); ok {
		return m, nil
	}
	for _, m := range Modes() {
		if m.Name() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("game: unknown mode %q", s)
}

package game

import (
	"fmt"

	"github.com/vovakirdan/birdjam/internal/core"
)

// Palette
const (
	skyColor    = core.ColorCyan
	textColor   = core.ColorBrightWhite
	birdColor   = core.ColorBrightYellow
	birdUpColor = core.ColorOrange
	wingColor   = core.ColorOrange
	pipeColor   = core.ColorGreen
	coinColor   = core.ColorYellow
	frogColor   = core.ColorBrightGreen
	tongueColor = core.ColorRed
	flyColor    = core.ColorGray
)

const (
	coinGlyph = '$'
	flyGlyph  = '*'
)

// Render returns the draw list for the current state in world
// coordinates. Play screens are drawn background, entities, obstacles,
// then HUD.
func (s *Session) Render() *core.DrawList {
	l := core.NewDrawList(s.bounds.W, s.bounds.H, skyColor)

	switch s.state.Kind {
	case StateMenu:
		s.drawMenu(l)
	case StateIntro:
		s.drawIntro(l)
	case StatePlay:
		s.drawPlay(l)
	case StateWin:
		s.drawEnd(l, "You Win!", "Click to return to menu")
	case StateLose:
		s.drawEnd(l, "Game Over!", "Click to return to menu")
	default:
		panic(fmt.Sprintf("game: unknown state %d", int(s.state.Kind)))
	}
	return l
}

func (s *Session) at(dy float64) core.Vec {
	return core.Vec{X: s.bounds.W / 2, Y: s.bounds.H/2 + dy}
}

func (s *Session) drawMenu(l *core.DrawList) {
	l.Text(s.at(-200), "Click to FLY!", core.AlignCenter, textColor)
	l.Text(s.at(-150), "BIRD", core.AlignCenter, textColor)
	for i, m := range Modes() {
		label := fmt.Sprintf("(%s) %s", m.Key(), m.Spec().Label)
		l.Text(s.at(-40+40*float64(i)), label, core.AlignCenter, textColor)
	}
}

func (s *Session) drawIntro(l *core.DrawList) {
	spec := s.state.Mode.Spec()
	l.Text(s.at(-50), spec.Title, core.AlignCenter, textColor)
	l.Text(s.at(0), spec.Tagline, core.AlignCenter, textColor)
	dy := 50.0
	for _, c := range spec.Controls {
		l.Text(s.at(dy), c, core.AlignCenter, textColor)
		dy += 30
	}
	if win := s.wins[s.state.Mode]; win > 0 {
		l.Text(s.at(dy), fmt.Sprintf("Score %d to win", win), core.AlignCenter, textColor)
		dy += 30
	}
	l.Text(s.at(dy+10), "Click anywhere to start", core.AlignCenter, textColor)
}

func (s *Session) drawEnd(l *core.DrawList, title, hint string) {
	l.Text(s.at(-50), title, core.AlignCenter, textColor)
	l.Text(s.at(0), fmt.Sprintf("Score: %d", s.score), core.AlignCenter, textColor)
	l.Text(s.at(50), hint, core.AlignCenter, textColor)
}

func (s *Session) drawPlay(l *core.DrawList) {
	mode := s.state.Mode

	// Entities
	if mode == ModeFrog {
		s.drawFrog(l)
	} else {
		s.drawBird(l, mode)
	}
	for _, p := range s.pickups {
		switch p.Kind {
		case PickupCoin:
			l.Glyph(p.Body.Pos, p.Body.Size, coinGlyph, coinColor)
		case PickupFly:
			l.Glyph(p.Body.Pos, p.Body.Size, flyGlyph, flyColor)
		}
	}

	// Obstacles
	for _, o := range s.obstacles {
		for _, b := range o.Blocks() {
			l.Rect(b, pipeColor)
		}
	}

	// HUD
	l.Text(core.Vec{X: s.bounds.W - 20, Y: 20}, fmt.Sprintf("%d", s.score), core.AlignRight, textColor)
	if mode.Spec().Progressive {
		st := s.diff.Stage(s.score)
		l.Text(core.Vec{X: 10, Y: 10}, fmt.Sprintf("Difficulty: %.0fpx gap", st.GapSize),
			core.AlignLeft, core.Heat(s.diff.Level(s.score)))
	}
	if s.paused {
		l.Text(s.at(-20), "PAUSED", core.AlignCenter, textColor)
		l.Text(s.at(20), "Press P to resume", core.AlignCenter, textColor)
	}
}

func (s *Session) drawBird(l *core.DrawList, mode Mode) {
	b := s.player
	body := birdColor
	if mode == ModeGravity && b.Direction < 0 {
		body = birdUpColor
	}
	l.Ellipse(b.Pos, b.Size, b.Size, body)
	wing := core.Vec{X: b.Pos.X - b.Size/3, Y: b.Pos.Y + b.Size/3}
	l.Ellipse(wing, b.Size/3, b.Size/3, wingColor)
}

func (s *Session) drawFrog(l *core.DrawList) {
	t := s.tongue
	l.Line(t.Tip, s.player.Pos, tongueColor)
	l.Ellipse(t.Tip, t.Size, t.Size, tongueColor)
	l.Ellipse(s.player.Pos, s.player.Size, s.player.Size, frogColor)
}

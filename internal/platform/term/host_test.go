package term

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/birdjam/internal/config"
	"github.com/vovakirdan/birdjam/internal/core"
	"github.com/vovakirdan/birdjam/internal/game"
)

func newSimHost(t *testing.T, start *game.Mode) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 30)

	s, err := game.New(config.DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	return New(screen, s, Options{Config: core.DefaultConfig(), Start: start}), screen
}

func contents(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func TestDrawShowsMenu(t *testing.T) {
	h, screen := newSimHost(t, nil)
	h.Draw()

	out := contents(screen)
	if !strings.Contains(out, "BIRD") || !strings.Contains(out, "Click to FLY!") {
		t.Errorf("screen does not show the menu:\n%s", out)
	}
}

func TestKeysDriveSession(t *testing.T) {
	h, _ := newSimHost(t, nil)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))
	h.Step()
	if st := h.session.State(); st.Kind != game.StateIntro || st.Mode != game.ModeWavy {
		t.Fatalf("state = %s, expected wavyIntro", st)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	h.Step()
	if st := h.session.State(); st.Kind != game.StatePlay {
		t.Fatalf("state = %s, expected wavyPlay", st)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if res := h.Step(); !res.State.Paused {
		t.Error("p should pause")
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newSimHost(t, nil)
	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl+c should quit")
	}
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("x should not quit")
	}
}

func TestHeldArrowSteers(t *testing.T) {
	mode := game.ModeFalling
	h, _ := newSimHost(t, &mode)
	h.Step()
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	h.Step()

	x := h.session.Player().Pos.X
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	h.Step()
	h.Step()
	if got := h.session.Player().Pos.X; got != x-6 {
		t.Errorf("x = %v after two held ticks, expected %v", got, x-6)
	}
}

func TestMousePressIsEdgeTriggered(t *testing.T) {
	mode := game.ModeFlappy
	h, _ := newSimHost(t, &mode)
	h.Step()

	h.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonPrimary, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(6, 5, tcell.ButtonPrimary, tcell.ModNone)) // drag
	if n := len(h.frame.Events()); n != 1 {
		t.Fatalf("queued %d events, expected a single press", n)
	}
	h.Step()
	if st := h.session.State(); st.Kind != game.StatePlay {
		t.Fatalf("state = %s, expected play", st)
	}

	h.HandleEvent(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(6, 5, tcell.ButtonPrimary, tcell.ModNone))
	if res := h.Step(); res.State.Tick != 1 || math.Abs(h.session.Player().Vel.Y+9.4) > 1e-9 {
		t.Errorf("second press should flap: vel=%v", h.session.Player().Vel.Y)
	}
}

func TestResizeEvent(t *testing.T) {
	h, _ := newSimHost(t, nil)
	h.HandleEvent(tcell.NewEventResize(80, 24))
	if h.buf.Width() != 80 || h.buf.Height() != 24 {
		t.Errorf("buffer = %dx%d, expected 80x24", h.buf.Width(), h.buf.Height())
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	h, _ := newSimHost(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.Loop(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Loop() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop() did not return after cancel")
	}
}

func TestLoopStopsOnQuitKey(t *testing.T) {
	h, screen := newSimHost(t, nil)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- h.Loop(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Loop() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop() did not return on q")
	}
}

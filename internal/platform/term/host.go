// Package term is the raw tcell host. It reads terminal events on their own
// goroutine and owns the game session on the main loop.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/birdjam/internal/core"
	"github.com/vovakirdan/birdjam/internal/game"
	"github.com/vovakirdan/birdjam/internal/platform"
)

// Options configures the tcell host.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger
	Sound  platform.CuePlayer
	Start  *game.Mode // Preselect a mode from the menu
}

// Host drives a session on a tcell screen.
type Host struct {
	screen   tcell.Screen
	session  *game.Session
	reporter *platform.Reporter
	logger   *log.Logger
	buf      *core.Screen
	frame    core.InputFrame
	hold     *platform.HoldTracker
	interval time.Duration
	buttons  tcell.ButtonMask
}

// New creates a host on an initialized screen.
func New(screen tcell.Screen, s *game.Session, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config.Normalize()

	w, h := screen.Size()
	host := &Host{
		screen:   screen,
		session:  s,
		reporter: platform.NewReporter(logger, opts.Sound),
		logger:   logger,
		buf:      core.NewScreen(w, h),
		frame:    core.NewInputFrame(),
		hold:     platform.NewHoldTracker(cfg.HoldTicks),
		interval: cfg.FrameInterval(),
	}
	if opts.Start != nil && s.State().Kind == game.StateMenu {
		host.frame.KeyPress(opts.Start.Key())
	}
	return host
}

// HandleEvent applies one terminal event. It returns true on a quit request.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.buf.Resize(w, hgt)
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter, tcell.KeyUp:
		h.frame.PointerPress(core.Vec{})
	case tcell.KeyLeft:
		h.hold.Press(core.KeyLeft)
	case tcell.KeyRight:
		h.hold.Press(core.KeyRight)
	case tcell.KeyEscape:
		h.frame.KeyPress(core.KeyPause)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == ' ' || r == 'w':
			h.frame.PointerPress(core.Vec{})
		case r == 'a':
			h.hold.Press(core.KeyLeft)
		case r == 'd':
			h.hold.Press(core.KeyRight)
		case r == 'p':
			h.frame.KeyPress(core.KeyPause)
		case r >= '0' && r <= '9':
			h.frame.KeyPress(core.Key(string(r)))
		}
	}
	return false
}

// handleMouse tracks the pointer and turns a primary button going down
// into a pointer press. tcell reports button state, not edges.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	at := h.toWorld(x, y)
	h.frame.SetPointer(at)

	btn := ev.Buttons()
	if btn&tcell.ButtonPrimary != 0 && h.buttons&tcell.ButtonPrimary == 0 {
		h.frame.PointerPress(at)
	}
	h.buttons = btn
}

func (h *Host) toWorld(x, y int) core.Vec {
	b := h.session.Bounds()
	cols, rows := max(h.buf.Width(), 1), max(h.buf.Height(), 1)
	x = core.Clamp(x, 0, cols-1)
	y = core.Clamp(y, 0, rows-1)
	return core.Vec{
		X: (float64(x) + 0.5) * b.W / float64(cols),
		Y: (float64(y) + 0.5) * b.H / float64(rows),
	}
}

// Step runs one simulation tick with the input gathered since the last one.
func (h *Host) Step() game.StepResult {
	h.hold.Apply(&h.frame)
	res := h.session.Tick(h.frame)
	h.reporter.Report(res)
	if res.State.State.Kind != game.StatePlay {
		h.hold.Reset()
	}
	h.frame.Clear()
	return res
}

// Draw rasterizes the session and shows it.
func (h *Host) Draw() {
	list := h.session.Render()
	list.Rasterize(h.buf)

	bg := tcell.ColorDefault
	if c, ok := tcellColor(list.Background); ok {
		bg = c
	}
	for y := range h.buf.Height() {
		for x := range h.buf.Width() {
			cell := h.buf.GetCell(x, y)
			st := tcell.StyleDefault.Background(bg)
			if c, ok := tcellColor(cell.Color); ok {
				st = st.Foreground(c)
			}
			h.screen.SetContent(x, y, cell.Rune, nil, st)
		}
	}
	h.screen.Show()
}

// Loop runs until the player quits or ctx is cancelled.
func (h *Host) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(ctx context.Context, s *game.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return New(screen, s, opts).Loop(ctx)
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdjam/internal/core"
	"github.com/vovakirdan/birdjam/internal/game"
	"github.com/vovakirdan/birdjam/internal/platform"
)

// Options configures the Bubble Tea host.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger
	Sound  platform.CuePlayer
	Start  *game.Mode // Preselect a mode from the menu
}

// Model is the Bubble Tea model that drives a game session.
type Model struct {
	session  *game.Session
	reporter *platform.Reporter
	logger   *log.Logger
	screen   *core.Screen
	frame    *core.InputFrame
	hold     *platform.HoldTracker
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model for the session.
func NewModel(s *game.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config.Normalize()

	frame := core.NewInputFrame()
	if opts.Start != nil && s.State().Kind == game.StateMenu {
		frame.KeyPress(opts.Start.Key())
	}

	return Model{
		session:  s,
		reporter: platform.NewReporter(logger, opts.Sound),
		logger:   logger,
		screen:   core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		frame:    &frame,
		hold:     platform.NewHoldTracker(cfg.HoldTicks),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
	}
}

// playRows leaves the last terminal row for the help footer.
func playRows(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, k := m.keys.Map(msg)
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandSnapshot:
		m.saveScreenshot()
	case CommandHelp:
		m.help.ShowAll = !m.help.ShowAll
	case CommandClick:
		m.frame.PointerPress(core.Vec{})
	case CommandKey:
		m.frame.KeyPress(k)
	case CommandHold:
		m.hold.Press(k)
	case CommandNone:
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at := m.toWorld(msg.X, msg.Y)
	m.frame.SetPointer(at)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.frame.PointerPress(at)
	}
	return m, nil
}

// toWorld maps a terminal cell to the centre of its world-space area.
func (m Model) toWorld(x, y int) core.Vec {
	b := m.session.Bounds()
	cols, rows := max(m.screen.Width(), 1), max(m.screen.Height(), 1)
	x = core.Clamp(x, 0, cols-1)
	y = core.Clamp(y, 0, rows-1)
	return core.Vec{
		X: (float64(x) + 0.5) * b.W / float64(cols),
		Y: (float64(y) + 0.5) * b.H / float64(rows),
	}
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(m.frame)
	res := m.session.Tick(*m.frame)
	m.reporter.Report(res)
	if res.State.State.Kind != game.StatePlay {
		m.hold.Reset()
	}
	m.frame.Clear()
	return m, tickCmd(m.config.FrameInterval())
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	list := m.session.Render()
	list.Rasterize(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".birdjam", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.session.State(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path, "labels", strings.Join(list.Texts(), " | "))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	list := m.session.Render()
	list.Rasterize(m.screen)
	return RenderScreen(m.screen, list.Background) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(s *game.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(s, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

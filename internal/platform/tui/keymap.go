package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/birdjam/internal/core"
)

// Command is what a key press means to the host.
type Command int

const (
	CommandNone     Command = iota
	CommandQuit             // Leave the program
	CommandClick            // Pointer press (flap, start, continue)
	CommandKey              // Discrete key press forwarded to the session
	CommandHold             // Directional key, held for a few ticks
	CommandSnapshot         // Save the current screen to a file
	CommandHelp             // Toggle the full help
)

// KeyMap holds the Bubble Tea key bindings. Keys are centralized here so
// they can be tested and listed in the help footer.
type KeyMap struct {
	Click    key.Binding
	Left     key.Binding
	Right    key.Binding
	Mode     key.Binding
	Pause    key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Click: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space", "flap/click"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Mode: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("0-7", "mode"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Mode, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Click, k.Left, k.Right},
		{k.Mode, k.Pause},
		{k.Snapshot, k.Help, k.Quit},
	}
}

// Map translates a key message. The returned core.Key is set for
// CommandKey and CommandHold.
func (k KeyMap) Map(msg tea.KeyMsg) (Command, core.Key) {
	switch {
	case key.Matches(msg, k.Quit):
		return CommandQuit, core.KeyNone
	case key.Matches(msg, k.Snapshot):
		return CommandSnapshot, core.KeyNone
	case key.Matches(msg, k.Help):
		return CommandHelp, core.KeyNone
	case key.Matches(msg, k.Click):
		return CommandClick, core.KeyNone
	case key.Matches(msg, k.Left):
		return CommandHold, core.KeyLeft
	case key.Matches(msg, k.Right):
		return CommandHold, core.KeyRight
	case key.Matches(msg, k.Pause):
		return CommandKey, core.KeyPause
	case key.Matches(msg, k.Mode):
		return CommandKey, core.Key(msg.String())
	}
	return CommandNone, core.KeyNone
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devmabbott/Invaders/internal/core"
)

// KeyMap holds the game's key bindings. It also feeds the help footer.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move, space
// to fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to a raw game event.
// Returns false for keys the game does not use.
func (k KeyMap) Map(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent(), true
	case key.Matches(msg, k.Up):
		return core.KeyDownEvent(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.KeyDownEvent(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.KeyDownEvent(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.KeyDownEvent(core.KeyRight), true
	case key.Matches(msg, k.Fire):
		return core.KeyDownEvent(core.KeyFire), true
	}
	return core.Event{}, false
}

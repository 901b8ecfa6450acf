package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/platform"
)

// Model is the Bubble Tea model that displays frames produced by the game
// loop and forwards key presses to it. It holds no game state.
type Model struct {
	keys     KeyMap
	help     help.Model
	queue    *platform.Queue
	frame    string
	status   string
	quitting bool
}

// NewModel creates a model that pushes key presses into queue.
func NewModel(queue *platform.Queue, status string) Model {
	return Model{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		queue:  queue,
		status: status,
	}
}

// Init implements tea.Model. Frames arrive from the loop, so there is nothing
// to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.Map(msg); ok {
			m.queue.Push(ev)
			if ev.Type == core.EventQuit {
				m.quitting = true
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case frameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// View renders the latest frame with its border and footer.
func (m Model) View() string {
	if m.quitting || m.frame == "" {
		return ""
	}
	return RenderFrame(m.frame, m.status+"  "+m.help.View(m.keys))
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/platform"
	"github.com/devmabbott/Invaders/internal/sprite"
)

func TestKeyMapMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Event
		wantOK bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyDownEvent(core.KeyLeft), true},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.KeyDownEvent(core.KeyRight), true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.KeyDownEvent(core.KeyUp), true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDownEvent(core.KeyDown), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeyDownEvent(core.KeyFire), true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.QuitEvent(), true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent(), true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keys.Map(tc.msg)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModelForwardsKeys(t *testing.T) {
	queue := platform.NewQueue(platform.QueueSize, time.Second)
	var m tea.Model = NewModel(queue, "status")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Equal(t, []core.Event{
		core.KeyDownEvent(core.KeyLeft),
		core.KeyDownEvent(core.KeyFire),
	}, queue.Poll(time.Now()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Contains(t, queue.Poll(time.Now()), core.QuitEvent())
	assert.Empty(t, m.View(), "nothing is drawn once quitting")
}

func TestModelShowsLatestFrame(t *testing.T) {
	queue := platform.NewQueue(platform.QueueSize, time.Second)
	var m tea.Model = NewModel(queue, "invaders · 60 ticks/s")
	assert.Empty(t, m.View(), "no frame yet")

	m, _ = m.Update(frameMsg("first"))
	m, _ = m.Update(frameMsg("second"))

	view := m.View()
	assert.Contains(t, view, "second")
	assert.NotContains(t, view, "first")
	assert.Contains(t, view, "60 ticks/s")
	assert.Contains(t, view, "fire")
}

func TestSurfaceBlitAndPresent(t *testing.T) {
	var sent []tea.Msg
	s := NewSurface(6, 3, func(msg tea.Msg) { sent = append(sent, msg) })
	ship := sprite.New("ship", []string{" ^ ", "/#\\"}, core.ColorBrightGreen)

	s.Blit(ship, 4, 1)
	assert.Equal(t, core.Cell{Rune: '^', Color: core.ColorBrightGreen}, s.Screen().GetCell(5, 1))
	assert.Equal(t, '/', s.Screen().GetCell(4, 2).Rune)
	assert.Equal(t, ' ', s.Screen().GetCell(4, 1).Rune, "spaces are transparent")

	require.NoError(t, s.Present())
	require.Len(t, sent, 1)
	frame, ok := sent[0].(frameMsg)
	require.True(t, ok)
	assert.Contains(t, string(frame), "/#")

	s.Clear()
	assert.Equal(t, ' ', s.Screen().GetCell(5, 1).Rune)
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(4, 2)
	for x, r := range "abcd" {
		color := core.ColorDefault
		if x < 2 {
			color = core.ColorRed
		}
		s.SetCell(x, 0, core.Cell{Rune: r, Color: color})
	}
	for x, r := range "efgh" {
		s.SetCell(x, 1, core.Cell{Rune: r})
	}

	rows := strings.Split(RenderScreen(s), "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "ab")
	assert.Contains(t, rows[0], "cd")
	assert.Contains(t, rows[1], "efgh")
}

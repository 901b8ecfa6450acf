package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/sprite"
)

// frameMsg carries a finished frame from the loop to the Bubble Tea program.
type frameMsg string

// Surface composes frames into an off-screen buffer and hands each finished
// frame to the program.
type Surface struct {
	screen *core.Screen
	send   func(tea.Msg)
}

// NewSurface creates a cols×rows surface that delivers frames through send,
// normally tea.Program.Send.
func NewSurface(cols, rows int, send func(tea.Msg)) *Surface {
	return &Surface{screen: core.NewScreen(cols, rows), send: send}
}

// Clear blanks the buffer.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// Blit draws a sprite with its top-left corner at cell (x, y).
// Cells outside the playfield are clipped.
func (s *Surface) Blit(spr *sprite.Sprite, x, y int) {
	color := spr.Color()
	spr.Each(func(dx, dy int, r rune) {
		s.screen.SetCell(x+dx, y+dy, core.Cell{Rune: r, Color: color})
	})
}

// Present renders the buffer and sends it to the program.
func (s *Surface) Present() error {
	s.send(frameMsg(RenderScreen(s.screen)))
	return nil
}

// Screen returns the buffer the surface draws into.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

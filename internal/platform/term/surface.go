// Package term runs the game directly on a tcell screen. It draws every frame
// in place and pumps tcell key events into the input queue.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/sprite"
)

var frameStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(core.ColorGray.ANSI()))

// styleFor returns the tcell style for a sprite color.
func styleFor(c core.Color) tcell.Style {
	if n := c.ANSI(); n >= 0 {
		return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
	}
	return tcell.StyleDefault
}

// Surface draws the playfield inside a border at the top-left of a tcell
// screen, with a footer line below it.
type Surface struct {
	screen     tcell.Screen
	cols, rows int
	footer     string
}

// NewSurface creates a surface for a cols×rows playfield on screen.
func NewSurface(screen tcell.Screen, cols, rows int, footer string) *Surface {
	return &Surface{screen: screen, cols: cols, rows: rows, footer: footer}
}

// Clear blanks the screen and redraws the border and footer.
func (s *Surface) Clear() {
	s.screen.Clear()
	s.drawFrame()
}

// Blit draws a sprite with its top-left corner at playfield cell (x, y).
// Cells outside the playfield are clipped so the border stays intact.
func (s *Surface) Blit(spr *sprite.Sprite, x, y int) {
	style := styleFor(spr.Color())
	bounds := core.NewRect(0, 0, s.cols, s.rows)
	spr.Each(func(dx, dy int, r rune) {
		cx, cy := x+dx, y+dy
		if !bounds.Contains(cx, cy) {
			return
		}
		s.screen.SetContent(cx+1, cy+1, r, nil, style)
	})
}

// Present shows the composed frame.
func (s *Surface) Present() error {
	s.screen.Show()
	return nil
}

func (s *Surface) drawFrame() {
	right, bottom := s.cols+1, s.rows+1
	for x := 1; x < right; x++ {
		s.screen.SetContent(x, 0, tcell.RuneHLine, nil, frameStyle)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, frameStyle)
	}
	for y := 1; y < bottom; y++ {
		s.screen.SetContent(0, y, tcell.RuneVLine, nil, frameStyle)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, frameStyle)
	}
	s.screen.SetContent(0, 0, tcell.RuneULCorner, nil, frameStyle)
	s.screen.SetContent(right, 0, tcell.RuneURCorner, nil, frameStyle)
	s.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, frameStyle)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, frameStyle)

	x := 0
	for _, r := range s.footer {
		s.screen.SetContent(x, bottom+1, r, nil, frameStyle)
		x++
	}
}

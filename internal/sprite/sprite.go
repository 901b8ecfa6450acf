// Package sprite holds the shared visual assets drawn by the game.
// Sprites are loaded once at startup into a Registry and are never modified
// afterwards; entities keep plain pointers to them and never own them.
package sprite

import (
	"unicode/utf8"

	"github.com/devmabbott/Invaders/internal/core"
)

// Sprite is a small multi-line glyph drawn in a single color.
// Spaces in Rows are transparent.
type Sprite struct {
	name  string
	rows  []string
	color core.Color
	width int
}

// New creates a sprite from its rows. Width is the longest row in runes.
func New(name string, rows []string, color core.Color) *Sprite {
	w := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > w {
			w = n
		}
	}
	cp := make([]string, len(rows))
	copy(cp, rows)
	return &Sprite{name: name, rows: cp, color: color, width: w}
}

// Name returns the registry key of the sprite.
func (s *Sprite) Name() string { return s.name }

// Width returns the sprite width in cells.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in cells.
func (s *Sprite) Height() int { return len(s.rows) }

// Color returns the sprite's foreground color.
func (s *Sprite) Color() core.Color { return s.color }

// Each calls fn for every opaque cell of the sprite with its offset from the
// top-left corner.
func (s *Sprite) Each(fn func(dx, dy int, r rune)) {
	for dy, row := range s.rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				fn(dx, dy, r)
			}
			dx++
		}
	}
}

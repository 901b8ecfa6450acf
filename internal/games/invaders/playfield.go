// Package invaders implements the arcade shooter simulation: the player's ship,
// its gun, the bullets in flight and the alien formation, advanced one fixed
// tick at a time.
//
// Positions are integer world units. One terminal cell spans Scale units on
// both axes, which lets slow entities move less than a cell per tick.
package invaders

import (
	"github.com/devmabbott/Invaders/internal/config"
	"github.com/devmabbott/Invaders/internal/core"
)

// Playfield is the fixed-resolution area every entity lives in.
type Playfield struct {
	Cols  int // Width in cells
	Rows  int // Height in cells
	Scale int // World units per cell
}

// NewPlayfield creates a playfield from its configuration.
func NewPlayfield(cfg config.PlayfieldConfig) Playfield {
	return Playfield{Cols: cfg.Cols, Rows: cfg.Rows, Scale: cfg.Scale}
}

// Width returns the playfield width in world units.
func (p Playfield) Width() int { return p.Cols * p.Scale }

// Height returns the playfield height in world units.
func (p Playfield) Height() int { return p.Rows * p.Scale }

// Bounds returns the playfield as a world-unit rectangle anchored at the origin.
func (p Playfield) Bounds() core.Rect {
	return core.NewRect(0, 0, p.Width(), p.Height())
}

// ToCell converts a world position to the cell that contains it.
func (p Playfield) ToCell(x, y int) (int, int) {
	return core.FloorDiv(x, p.Scale), core.FloorDiv(y, p.Scale)
}

// SpriteSize returns the world-unit footprint of a w×h cell sprite.
func (p Playfield) SpriteSize(w, h int) (int, int) {
	return w * p.Scale, h * p.Scale
}

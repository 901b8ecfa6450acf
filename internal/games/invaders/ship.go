package invaders

import "github.com/devmabbott/Invaders/internal/sprite"

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Ship is anything that moves, shoots and is drawn with a sprite.
// The sprite belongs to the registry; the gun belongs to the ship.
type Ship struct {
	X, Y   int // Top-left corner in world units
	Speed  int // World units per Move
	Sprite *sprite.Sprite
	Gun    *Gun

	prevX, prevY int // Position at the start of the current tick
}

// Size returns the ship's footprint in world units.
func (s *Ship) Size(field Playfield) (int, int) {
	if s.Sprite == nil {
		return field.Scale, field.Scale
	}
	return field.SpriteSize(s.Sprite.Width(), s.Sprite.Height())
}

// Move steps the ship Speed units in dir and keeps it inside the playfield.
func (s *Ship) Move(dir Direction, field Playfield) {
	switch dir {
	case DirUp:
		s.Translate(0, -s.Speed, field)
	case DirDown:
		s.Translate(0, s.Speed, field)
	case DirLeft:
		s.Translate(-s.Speed, 0, field)
	case DirRight:
		s.Translate(s.Speed, 0, field)
	}
}

// Translate shifts the ship by (dx, dy) and clamps it to the playfield.
func (s *Ship) Translate(dx, dy int, field Playfield) {
	w, h := s.Size(field)
	s.X, s.Y = field.Bounds().ClampPoint(s.X+dx, s.Y+dy, w, h)
}

// Muzzle returns where a bullet fired upward leaves the ship: the cell above
// its top centre.
func (s *Ship) Muzzle(field Playfield) (int, int) {
	w, _ := s.Size(field)
	return s.X + (w-field.Scale)/2, s.Y - 1
}

func (s *Ship) beginTick() {
	s.prevX, s.prevY = s.X, s.Y
}

// Extrapolate returns the ship's position alpha of the way into the next tick,
// assuming it keeps its last tick's displacement.
func (s *Ship) Extrapolate(alpha float64) (float64, float64) {
	return float64(s.X) + float64(s.X-s.prevX)*alpha,
		float64(s.Y) + float64(s.Y-s.prevY)*alpha
}

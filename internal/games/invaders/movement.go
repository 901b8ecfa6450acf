package invaders

import "fmt"

// MovementKind selects how a bullet travels.
type MovementKind int

const (
	StraightUp   MovementKind = iota // Decreasing y, used by the player
	StraightDown                     // Increasing y, used by aliens
)

// String returns a human-readable name for the movement kind.
func (k MovementKind) String() string {
	switch k {
	case StraightUp:
		return "StraightUp"
	case StraightDown:
		return "StraightDown"
	default:
		return fmt.Sprintf("MovementKind(%d)", int(k))
	}
}

// Movement is a bullet's travel strategy: a kind plus its parameters.
// Identical strategies are plain equal values and share no per-bullet state.
type Movement struct {
	Kind  MovementKind
	Speed int // World units per tick
}

// Up returns a straight upward movement.
func Up(speed int) Movement {
	return Movement{Kind: StraightUp, Speed: speed}
}

// Down returns a straight downward movement.
func Down(speed int) Movement {
	return Movement{Kind: StraightDown, Speed: speed}
}

// NextPosition returns where a bullet at (x, y) will be one tick later.
// It depends only on its arguments and m. An unknown kind panics.
func (m Movement) NextPosition(x, y int) (int, int) {
	switch m.Kind {
	case StraightUp:
		return x, y - m.Speed
	case StraightDown:
		return x, y + m.Speed
	default:
		panic(fmt.Sprintf("invaders: unknown movement kind %d", int(m.Kind)))
	}
}

// Repeat returns the movement equivalent to applying m k times in one step.
func (m Movement) Repeat(k int) Movement {
	m.Speed *= k
	return m
}

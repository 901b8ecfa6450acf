package invaders

import "fmt"

// PatternKind selects how an alien moves.
type PatternKind int

const (
	PatternHold  PatternKind = iota // Never moves
	PatternMarch                    // Right N steps, down, left N steps, down, repeat
)

// ParsePatternKind maps a configuration name to a pattern kind.
func ParsePatternKind(name string) (PatternKind, error) {
	switch name {
	case "hold":
		return PatternHold, nil
	case "march":
		return PatternMarch, nil
	default:
		return PatternHold, fmt.Errorf("invaders: unknown alien pattern %q", name)
	}
}

// String returns the configuration name of the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatternHold:
		return "hold"
	case PatternMarch:
		return "march"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// Pattern drives an alien's movement. It steps once every StepEvery ticks.
type Pattern struct {
	Kind       PatternKind
	Speed      int // World units per step
	StepEvery  int // Ticks between steps
	MarchSteps int // Sideways steps per leg of a march

	tick int
	step int
}

// Next advances the pattern one tick and returns the displacement to apply.
func (p *Pattern) Next() (dx, dy int) {
	if p.Kind == PatternHold {
		return 0, 0
	}

	p.tick++
	if p.StepEvery > 1 && p.tick%p.StepEvery != 0 {
		return 0, 0
	}

	// A march cycle is MarchSteps right, one down, MarchSteps left, one down.
	cycle := 2*p.MarchSteps + 2
	pos := p.step % cycle
	p.step++

	switch {
	case pos < p.MarchSteps:
		return p.Speed, 0
	case pos == p.MarchSteps:
		return 0, p.Speed
	case pos < cycle-1:
		return -p.Speed, 0
	default:
		return 0, p.Speed
	}
}

// Alien is an enemy ship with a movement pattern and a score value.
// Reward is recorded for whoever resolves hits; nothing in the tick uses it.
type Alien struct {
	Ship
	Pattern    Pattern
	Reward     int
	FireChance float64 // Probability of trying to fire on any given tick
}

// Muzzle returns where a bullet fired downward leaves the alien: the cell
// below its bottom centre.
func (a *Alien) Muzzle(field Playfield) (int, int) {
	w, h := a.Size(field)
	return a.X + (w-field.Scale)/2, a.Y + h
}

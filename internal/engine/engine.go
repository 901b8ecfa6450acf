// Package engine runs a simulation on a fixed timestep and renders it as fast
// as the display allows, interpolating between ticks.
package engine

//go:generate go tool mockgen -destination=./mocks/mock_engine.go -package=mocks . Surface,InputSource,Simulation

import (
	"time"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/sprite"
)

// Surface is a display the loop draws frames onto.
// Blit positions are in cells relative to the playfield's top-left corner.
type Surface interface {
	Clear()
	Blit(s *sprite.Sprite, x, y int)
	Present() error
}

// InputSource is a queue of input events. Poll drains everything queued up to
// now and must not block.
type InputSource interface {
	Poll(now time.Time) []core.Event
}

// Simulation is the state the loop advances and draws.
type Simulation interface {
	// HandleEvent applies a key event before the next Advance.
	HandleEvent(ev core.Event)
	// Advance runs exactly one fixed tick.
	Advance()
	// Render draws the state alpha of the way into the next tick.
	Render(dst Surface, alpha float64)
}

package platform

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/devmabbott/Invaders/internal/core"
)

// QueueSize is the number of raw key events a backend buffers between ticks.
const QueueSize = 64

// Options configures a backend run.
type Options struct {
	Runtime core.RuntimeConfig
	Hold    time.Duration // Release keys after this long without a repeat
	Taps    []core.Key    // Keys released on the next tick unless they repeat
	Logger  *log.Logger
}

// Footer returns the status text shown under the playfield.
func (o Options) Footer() string {
	return fmt.Sprintf("invaders · %d ticks/s", o.Runtime.TickRate)
}

package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/devmabbott/Invaders/internal/engine"
	"github.com/devmabbott/Invaders/internal/platform"
)

// Run plays sim on the terminal until the player quits, a signal arrives or
// ctx is done. The terminal is restored before Run returns.
func Run(ctx context.Context, sim engine.Simulation, opts platform.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	return RunOn(ctx, screen, sim, opts)
}

// RunOn plays sim on an initialised screen and finalizes it on return.
func RunOn(ctx context.Context, screen tcell.Screen, sim engine.Simulation, opts platform.Options) error {
	defer screen.Fini()

	w, h := screen.Size()
	if err := platform.CheckSize(w, h, opts.Runtime.Cols, opts.Runtime.Rows); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	screen.HideCursor()

	queue := platform.NewQueue(platform.QueueSize, opts.Hold, opts.Taps...)
	surface := NewSurface(screen, opts.Runtime.Cols, opts.Runtime.Rows, opts.Footer()+"  ←→/ad move · space fire · q quit")

	var ctlOpts []engine.Option
	if opts.Logger != nil {
		ctlOpts = append(ctlOpts, engine.WithLogger(opts.Logger))
	}
	ctl := engine.NewController(sim, surface, queue, opts.Runtime, ctlOpts...)

	release := engine.StopOnSignal(ctl)
	defer release()

	go pump(screen, queue.Push)

	return ctl.Run(ctx)
}

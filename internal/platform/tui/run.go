// Package tui runs the game inside a Bubble Tea program. The game loop runs on
// its own goroutine and sends finished frames to the program, which displays
// them and feeds key presses back through a queue.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/devmabbott/Invaders/internal/engine"
	"github.com/devmabbott/Invaders/internal/platform"
)

// Run plays sim until the player quits, a signal arrives or ctx is done.
func Run(ctx context.Context, sim engine.Simulation, opts platform.Options) error {
	queue := platform.NewQueue(platform.QueueSize, opts.Hold, opts.Taps...)
	model := NewModel(queue, opts.Footer())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithFPS(max(opts.Runtime.MaxFPS, 60)),
	)

	surface := NewSurface(opts.Runtime.Cols, opts.Runtime.Rows, p.Send)
	ctlOpts := []engine.Option{}
	if opts.Logger != nil {
		ctlOpts = append(ctlOpts, engine.WithLogger(opts.Logger))
	}
	ctl := engine.NewController(sim, surface, queue, opts.Runtime, ctlOpts...)

	release := engine.StopOnSignal(ctl)
	defer release()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer ctl.RequestStop()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer p.Quit()
		return ctl.Run(gctx)
	})
	return g.Wait()
}

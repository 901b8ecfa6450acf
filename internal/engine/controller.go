package engine

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/devmabbott/Invaders/internal/core"
)

// Stats counts what the loop has done so far.
type Stats struct {
	Ticks        int           // Simulation ticks run
	Frames       int           // Frames presented
	Degradations int           // Frames that hit the frame-skip cap while still behind
	Backlog      time.Duration // How far the tick deadline trailed the clock at the last frame
}

// Controller owns a simulation, the surface it is drawn on and the input that
// drives it, and runs them on a fixed timestep.
//
// Each frame runs every tick that has come due, up to MaxFrameSkip of them,
// then renders once with the fraction of the next tick already elapsed. When
// the cap is hit the deadline is left where it is, so the simulation runs
// slower than real time rather than trying to catch up without bound.
type Controller struct {
	sim     Simulation
	surface Surface
	input   InputSource
	clock   Clock
	logger  *log.Logger

	tickInterval  time.Duration
	frameInterval time.Duration
	maxFrameSkip  int

	nextTick time.Time
	behind   bool
	stop     atomic.Bool
	stats    Stats
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithLogger sets the logger used for loop events.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// NewController creates a controller. The first tick comes due one tick
// interval after construction.
func NewController(sim Simulation, surface Surface, input InputSource, cfg core.RuntimeConfig, opts ...Option) *Controller {
	c := &Controller{
		sim:           sim,
		surface:       surface,
		input:         input,
		clock:         SystemClock{},
		logger:        log.New(io.Discard),
		tickInterval:  cfg.TickInterval(),
		frameInterval: cfg.FrameInterval(),
		maxFrameSkip:  cfg.MaxFrameSkip,
	}
	if c.maxFrameSkip <= 0 {
		c.maxFrameSkip = core.DefaultConfig().MaxFrameSkip
	}
	for _, opt := range opts {
		opt(c)
	}
	c.nextTick = c.clock.Now()
	return c
}

// RequestStop asks the loop to exit before its next frame.
// It is safe to call from any goroutine.
func (c *Controller) RequestStop() {
	c.stop.Store(true)
}

// Stopped reports whether a stop was requested.
func (c *Controller) Stopped() bool {
	return c.stop.Load()
}

// Stats returns the loop counters. Only call it from the loop goroutine or
// after Run returned.
func (c *Controller) Stats() Stats {
	return c.stats
}

// NextTick returns the deadline of the next simulation tick.
func (c *Controller) NextTick() time.Time {
	return c.nextTick
}

// Run loops until a stop is requested, ctx is done or presenting a frame fails.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("loop started",
		"tick_interval", c.tickInterval,
		"max_frame_skip", c.maxFrameSkip,
		"frame_interval", c.frameInterval)

	reason := "stop requested"
	for {
		if c.stop.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			reason = err.Error()
			break
		}

		start := c.clock.Now()
		if err := c.Frame(); err != nil {
			c.logger.Error("loop aborted", "err", err)
			return err
		}
		c.pace(start)
	}

	c.logger.Info("loop stopped",
		"reason", reason,
		"ticks", c.stats.Ticks,
		"frames", c.stats.Frames,
		"degradations", c.stats.Degradations)
	return nil
}

// Frame runs one iteration of the loop: every due tick up to the frame-skip
// cap, then one rendered frame.
func (c *Controller) Frame() error {
	now := c.clock.Now()

	skipped := 0
	for now.After(c.nextTick) && skipped < c.maxFrameSkip {
		c.drainInput(now)
		c.sim.Advance()
		c.nextTick = c.nextTick.Add(c.tickInterval)
		c.stats.Ticks++
		skipped++
	}

	c.trackBacklog(now, skipped)

	alpha := float64(now.Add(c.tickInterval).Sub(c.nextTick)) / float64(c.tickInterval)
	c.surface.Clear()
	c.sim.Render(c.surface, alpha)
	if err := c.surface.Present(); err != nil {
		return fmt.Errorf("engine: present frame: %w", err)
	}
	c.stats.Frames++
	return nil
}

func (c *Controller) drainInput(now time.Time) {
	for _, ev := range c.input.Poll(now) {
		if ev.Type == core.EventQuit {
			c.RequestStop()
			continue
		}
		c.sim.HandleEvent(ev)
	}
}

func (c *Controller) trackBacklog(now time.Time, skipped int) {
	c.stats.Backlog = 0
	if now.After(c.nextTick) {
		c.stats.Backlog = now.Sub(c.nextTick)
	}

	if skipped == c.maxFrameSkip && c.stats.Backlog > 0 {
		c.stats.Degradations++
		if !c.behind {
			c.behind = true
			c.logger.Warn("frame-skip cap reached, simulation running behind real time",
				"max_frame_skip", c.maxFrameSkip,
				"backlog", c.stats.Backlog)
		}
		return
	}
	if c.behind && c.stats.Backlog < c.tickInterval {
		c.behind = false
		c.logger.Info("simulation caught up", "ticks", c.stats.Ticks)
	}
}

// pace sleeps out the rest of the frame budget. With no frame cap the loop
// spins.
func (c *Controller) pace(frameStart time.Time) {
	if c.frameInterval <= 0 {
		return
	}
	if d := c.frameInterval - c.clock.Now().Sub(frameStart); d > 0 {
		c.clock.Sleep(d)
	}
}

package core

import "time"

// RuntimeConfig contains the loop and display settings the platform passes to
// the engine at startup.
type RuntimeConfig struct {
	Cols         int   // Playfield width in terminal cells
	Rows         int   // Playfield height in terminal cells
	TickRate     int   // Simulation ticks per second (default 60)
	MaxFrameSkip int   // Most ticks run per rendered frame (default 10)
	MaxFPS       int   // Render cap; 0 renders as fast as possible
	Seed         int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:         80,
		Rows:         24,
		TickRate:     60,
		MaxFrameSkip: 10,
		MaxFPS:       120,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the fixed simulation step.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// FrameInterval returns the minimum time between rendered frames,
// or 0 when rendering is uncapped.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.MaxFPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.MaxFPS)
}

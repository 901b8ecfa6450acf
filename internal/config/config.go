// Package config provides YAML-based configuration loading for the game:
// loop timing, playfield geometry, the player's ship and the alien formation.
package config

import "github.com/devmabbott/Invaders/internal/core"

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Loop      LoopConfig      `yaml:"loop"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Aliens    AliensConfig    `yaml:"aliens"`
	Input     InputConfig     `yaml:"input"`
}

// LoopConfig defines the fixed-timestep loop parameters.
type LoopConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Simulation ticks per second
	MaxFrameSkip int `yaml:"max_frame_skip"` // Most ticks run per rendered frame
	MaxFPS       int `yaml:"max_fps"`        // Render cap, 0 = uncapped
}

// PlayfieldConfig defines the fixed display resolution.
// World coordinates are cells multiplied by Scale, giving sub-cell motion.
type PlayfieldConfig struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Scale int `yaml:"scale"`
}

// GunConfig defines a gun and the bullets it fires.
type GunConfig struct {
	RechargeRate int    `yaml:"recharge_rate"` // Ticks between shots
	Damage       int    `yaml:"damage"`
	BulletSprite string `yaml:"bullet_sprite"`
	BulletSpeed  int    `yaml:"bullet_speed"` // World units per tick
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Sprite string    `yaml:"sprite"`
	Speed  int       `yaml:"speed"` // World units per tick
	Gun    GunConfig `yaml:"gun"`
}

// AlienRow picks the sprite and reward for one formation row, top first.
type AlienRow struct {
	Sprite string `yaml:"sprite"`
	Reward int    `yaml:"reward"`
}

// FormationConfig places aliens on a grid, in cells.
type FormationConfig struct {
	Cols     int `yaml:"cols"`
	Left     int `yaml:"left"`
	Top      int `yaml:"top"`
	SpacingX int `yaml:"spacing_x"`
	SpacingY int `yaml:"spacing_y"`
}

// AliensConfig defines the alien formation and its behaviour.
type AliensConfig struct {
	Formation  FormationConfig `yaml:"formation"`
	Rows       []AlienRow      `yaml:"rows"`
	Pattern    string          `yaml:"pattern"`     // "march" or "hold"
	Speed      int             `yaml:"speed"`       // World units per pattern step
	StepEvery  int             `yaml:"step_every"`  // Ticks between pattern steps
	MarchSteps int             `yaml:"march_steps"` // Sideways steps before stepping down
	FloorGap   int             `yaml:"floor_gap"`   // Cells the formation stays above the player's starting row
	FireChance float64         `yaml:"fire_chance"` // Per-alien probability of a shot each tick
	Gun        GunConfig       `yaml:"gun"`
}

// InputConfig defines how press-only terminal input is turned into holds.
type InputConfig struct {
	HoldMS  int      `yaml:"hold_ms"`  // A key counts as released after this long without a repeat
	TapKeys []string `yaml:"tap_keys"` // Keys released on the next tick unless they repeat
}

// Taps returns the configured tap keys. Unknown names are skipped; Validate
// reports them.
func (c InputConfig) Taps() []core.Key {
	var keys []core.Key
	for _, name := range c.TapKeys {
		if k, ok := core.ParseKey(name); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Runtime builds the engine's runtime config from the loaded settings.
func (c InvadersConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Cols:         c.Playfield.Cols,
		Rows:         c.Playfield.Rows,
		TickRate:     c.Loop.TickRate,
		MaxFrameSkip: c.Loop.MaxFrameSkip,
		MaxFPS:       c.Loop.MaxFPS,
		Seed:         seed,
	}
}

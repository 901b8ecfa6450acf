package config

import (
	"errors"
	"fmt"

	"github.com/devmabbott/Invaders/internal/core"
)

// Validate checks that every field is usable and reports all problems at once.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Loop.TickRate > 0, "loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	check(c.Loop.MaxFrameSkip > 0, "loop.max_frame_skip must be positive, got %d", c.Loop.MaxFrameSkip)
	check(c.Loop.MaxFPS >= 0, "loop.max_fps must not be negative, got %d", c.Loop.MaxFPS)

	check(c.Playfield.Cols > 0, "playfield.cols must be positive, got %d", c.Playfield.Cols)
	check(c.Playfield.Rows > 0, "playfield.rows must be positive, got %d", c.Playfield.Rows)
	check(c.Playfield.Scale > 0, "playfield.scale must be positive, got %d", c.Playfield.Scale)

	check(c.Player.Sprite != "", "player.sprite is required")
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %d", c.Player.Speed)
	errs = append(errs, validateGun("player.gun", c.Player.Gun)...)

	a := c.Aliens
	check(a.Formation.Cols >= 0, "aliens.formation.cols must not be negative, got %d", a.Formation.Cols)
	for i, row := range a.Rows {
		check(row.Sprite != "", "aliens.rows[%d].sprite is required", i)
	}
	check(a.Pattern == "march" || a.Pattern == "hold", "aliens.pattern must be march or hold, got %q", a.Pattern)
	check(a.Speed >= 0, "aliens.speed must not be negative, got %d", a.Speed)
	check(a.StepEvery > 0, "aliens.step_every must be positive, got %d", a.StepEvery)
	check(a.MarchSteps >= 0, "aliens.march_steps must not be negative, got %d", a.MarchSteps)
	check(a.FloorGap >= 0, "aliens.floor_gap must not be negative, got %d", a.FloorGap)
	check(a.FireChance >= 0 && a.FireChance <= 1, "aliens.fire_chance must be within [0, 1], got %g", a.FireChance)
	errs = append(errs, validateGun("aliens.gun", a.Gun)...)

	check(c.Input.HoldMS > 0, "input.hold_ms must be positive, got %d", c.Input.HoldMS)
	for i, name := range c.Input.TapKeys {
		_, ok := core.ParseKey(name)
		check(ok, "input.tap_keys[%d] is not a game key, got %q", i, name)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}

func validateGun(prefix string, g GunConfig) []error {
	var errs []error
	if g.RechargeRate < 1 {
		errs = append(errs, fmt.Errorf("%s.recharge_rate must be at least 1, got %d", prefix, g.RechargeRate))
	}
	if g.BulletSprite == "" {
		errs = append(errs, fmt.Errorf("%s.bullet_sprite is required", prefix))
	}
	if g.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%s.bullet_speed must be positive, got %d", prefix, g.BulletSpeed))
	}
	return errs
}

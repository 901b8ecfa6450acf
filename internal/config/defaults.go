package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Loop: LoopConfig{
			TickRate:     60,
			MaxFrameSkip: 10,
			MaxFPS:       120,
		},
		Playfield: PlayfieldConfig{
			Cols:  80,
			Rows:  24,
			Scale: 16,
		},
		Player: PlayerConfig{
			Sprite: "player",
			Speed:  6,
			Gun: GunConfig{
				RechargeRate: 20,
				Damage:       1,
				BulletSprite: "player_bullet",
				BulletSpeed:  10,
			},
		},
		Aliens: AliensConfig{
			Formation: FormationConfig{
				Cols:     10,
				Left:     4,
				Top:      1,
				SpacingX: 6,
				SpacingY: 2,
			},
			Rows: []AlienRow{
				{Sprite: "alien_squid", Reward: 30},
				{Sprite: "alien_crab", Reward: 20},
				{Sprite: "alien_crab", Reward: 20},
				{Sprite: "alien_octopus", Reward: 10},
			},
			Pattern:    "march",
			Speed:      16,
			StepEvery:  30,
			MarchSteps: 10,
			FloorGap:   2,
			FireChance: 0.0005,
			Gun: GunConfig{
				RechargeRate: 120,
				Damage:       1,
				BulletSprite: "alien_bullet",
				BulletSpeed:  4,
			},
		},
		Input: InputConfig{
			HoldMS:  500,
			TapKeys: []string{"fire"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/devmabbott/Invaders/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvadersConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	assert.Equal(t, DefaultInvadersConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultInvadersConfig()
	cfg.Player.Speed = 9
	data, err := Marshal(cfg)
	require.NoError(t, err)

	dir := filepath.Join(home, ".invaders", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invaders.yaml"), data, 0o600))

	loaded, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.Player.Speed)
}

func TestLoadCustomPath(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Loop.TickRate = 30
	cfg.Aliens.Pattern = "hold"
	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadInvaders(path)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Loop.TickRate)
	assert.Equal(t, "hold", loaded.Aliens.Pattern)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("loop: [1, 2"), 0o600))
	_, err = LoadInvaders(bad)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Loop.TickRate = 0
	cfg.Playfield.Scale = 0
	cfg.Player.Gun.RechargeRate = 0
	cfg.Aliens.Pattern = "spiral"
	cfg.Aliens.FireChance = 1.5
	cfg.Aliens.FloorGap = -1
	cfg.Input.TapKeys = []string{"fire", "jump"}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"loop.tick_rate",
		"playfield.scale",
		"player.gun.recharge_rate",
		"aliens.pattern",
		"aliens.fire_chance",
		"aliens.floor_gap",
		`input.tap_keys[1] is not a game key, got "jump"`,
	} {
		assert.ErrorContains(t, err, want)
	}
}

func TestRuntime(t *testing.T) {
	rt := DefaultInvadersConfig().Runtime(42)

	assert.Equal(t, 80, rt.Cols)
	assert.Equal(t, 24, rt.Rows)
	assert.Equal(t, 60, rt.TickRate)
	assert.Equal(t, 10, rt.MaxFrameSkip)
	assert.Equal(t, 120, rt.MaxFPS)
	assert.Equal(t, int64(42), rt.Seed)
}

func TestInputTaps(t *testing.T) {
	in := DefaultInvadersConfig().Input
	assert.Equal(t, []core.Key{core.KeyFire}, in.Taps())

	in.TapKeys = []string{"left", "bogus", "Fire"}
	assert.Equal(t, []core.Key{core.KeyLeft, core.KeyFire}, in.Taps())
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/devmabbott/Invaders/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagConfig, flagFPS = "", 0
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	out, err := execute(t, "config", "--fps", "30")
	require.NoError(t, err)

	var cfg config.InvadersConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 30, cfg.Loop.TickRate)
	assert.Equal(t, config.DefaultInvadersConfig().Aliens, cfg.Aliens)
}

func TestConfigCommandRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loop:\n  tick_rate: -5\n"), 0o600))

	_, err := execute(t, "config", "--config", path)
	assert.ErrorContains(t, err, "loop.tick_rate")
}

func TestSpritesCommand(t *testing.T) {
	out, err := execute(t, "sprites")
	require.NoError(t, err)

	assert.Contains(t, out, "alien_crab")
	assert.Contains(t, out, "3x2")
	assert.Contains(t, out, "bright_green")
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "invaders.log")

	logger, closeLog, err := openLogger(path, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "ticks", 3)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "invaders")

	_, _, err = openLogger(path, "loud")
	assert.Error(t, err)
}

func TestCheckTerminalSizeWarnsWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer f.Close()

	var logs, stderr bytes.Buffer
	logger := log.New(&logs)

	err = checkTerminalSize(int(f.Fd()), config.DefaultInvadersConfig().Playfield, logger, &stderr)
	require.NoError(t, err, "a redirected stdout does not block the game")
	assert.Contains(t, logs.String(), "skipping size check")
	assert.Contains(t, stderr.String(), "Warning: cannot read terminal size")
}

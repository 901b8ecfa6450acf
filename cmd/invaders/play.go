package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devmabbott/Invaders/internal/config"
	"github.com/devmabbott/Invaders/internal/games/invaders"
	"github.com/devmabbott/Invaders/internal/platform"
	tcellterm "github.com/devmabbott/Invaders/internal/platform/term"
	"github.com/devmabbott/Invaders/internal/platform/tui"
	"github.com/devmabbott/Invaders/internal/sprite"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the current terminal.

Controls:
  ←/→ or A/D   - Move left/right
  ↑/↓ or W/S   - Move up/down
  Space        - Fire
  Q/Esc        - Quit

The terminal must be at least two columns wider and three rows taller than
the playfield (80x24 by default).

Examples:
  invaders play
  invaders play --backend tcell
  invaders play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.Loop.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// checkTerminalSize fails when the terminal on fd cannot fit the playfield.
// If fd is not a terminal the check is skipped and a warning goes to both the
// log and w.
func checkTerminalSize(fd int, field config.PlayfieldConfig, logger *log.Logger, w io.Writer) error {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		logger.Warn("terminal size unknown, skipping size check", "err", err)
		fmt.Fprintf(w, "Warning: cannot read terminal size (%v), skipping size check\n", err)
		return nil
	}
	return platform.CheckSize(cols, rows, field.Cols, field.Rows)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg, err := sprite.LoadDefault()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state, err := invaders.New(cfg, reg, seed)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := platform.Options{
		Runtime: cfg.Runtime(seed),
		Hold:    time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Taps:    cfg.Input.Taps(),
		Logger:  logger,
	}
	logger.Info("starting game", "backend", flagBackend, "seed", seed, "aliens", len(state.Aliens))

	ctx := context.Background()
	switch flagBackend {
	case "tui":
		if err := checkTerminalSize(int(os.Stdout.Fd()), cfg.Playfield, logger, cmd.ErrOrStderr()); err != nil {
			return err
		}
		err = tui.Run(ctx, state, opts)
	case "tcell":
		err = tcellterm.Run(ctx, state, opts)
	default:
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}
	if err != nil {
		logger.Error("game aborted", "err", err)
		return err
	}

	logger.Info("game ended",
		"ticks", state.Tick(),
		"player_shots", state.Shots(invaders.SidePlayer),
		"alien_shots", state.Shots(invaders.SideAlien))
	return nil
}

// invaders is a terminal arcade shooter: hold off a marching alien formation
// from the bottom of the screen.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play
//	invaders sprites         - List the sprites in the built-in sheet
//	invaders config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Load configuration from a YAML file
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--fps <rate>        - Override the simulation tick rate
//	--backend <name>    - Terminal backend: tui (Bubble Tea) or tcell
//	--log-file <path>   - Write logs here (default: ~/.invaders/invaders.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagBackend  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - an arcade shooter in your terminal",
	Long: `Invaders is a fixed-screen shooter for the terminal. Move your ship
along the bottom of the playfield and fire at the alien formation.

Available commands:
  play     - Play (the default)
  sprites  - List the built-in sprites
  config   - Print the effective configuration

Examples:
  invaders
  invaders --backend tcell --seed 42
  invaders config > my-invaders.yaml
  invaders --config ./my-invaders.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui or tcell")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.invaders/invaders.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

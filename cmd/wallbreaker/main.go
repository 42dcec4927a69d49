// wallbreaker is a single-screen brick breaker for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	wallbreaker play     - Play in the terminal
//	wallbreaker window   - Play in a desktop window
//	wallbreaker serve    - Start SSH server for remote play
//	wallbreaker config   - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: config tick_rate, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load game settings from a YAML file
//	--log-file <path>   - Write logs to a file (play only, default: discard)
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallbreaker",
	Short: "Wall Breaker - break every block with a bouncing ball",
	Long: `Wall Breaker is a brick breaker: steer the paddle, keep the ball in
play and destroy all 40 blocks. Destroyed blocks sometimes drop items:
green makes the ball pass through blocks, yellow doubles its size.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  wallbreaker play
  wallbreaker play --seed 42 --config ./wallbreaker.yaml
  wallbreaker window --fps 120
  wallbreaker serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-breaker/internal/games/breakout"
	"github.com/vovakirdan/wall-breaker/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Wall Breaker in an 800x600 desktop window.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after game over or clear)
  Esc/Q      - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd, "window", false, 0, 0)
	if err != nil {
		return err
	}
	defer s.closer()

	return window.Run(breakout.New(s.game), s.runtime, s.logger)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wall-breaker/internal/core"
	"github.com/vovakirdan/wall-breaker/internal/games/breakout"
	"github.com/vovakirdan/wall-breaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Wall Breaker in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after game over or clear)
  Ctrl+S     - Save a text screenshot to ~/.wallbreaker/screenshots
  Q/Ctrl+C   - Quit

The 800x600 playfield is scaled to the terminal size.

Examples:
  wallbreaker play
  wallbreaker play --seed 42
  wallbreaker play --debug --log-file wallbreaker.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Get terminal size for the first frame
	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(cmd, "play", true, width, height)
	if err != nil {
		return err
	}
	defer s.closer()

	if err := tui.Run(breakout.New(s.game), s.runtime, s.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

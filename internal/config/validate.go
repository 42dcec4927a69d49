package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every size and speed is usable and that the block
// grid fits on the screen. All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			bad("%s must be positive, got %v", name, v)
		}
	}

	positive("screen.width", float64(c.Screen.Width))
	positive("screen.height", float64(c.Screen.Height))
	positive("screen.tick_rate", float64(c.Screen.TickRate))
	positive("paddle.width", float64(c.Paddle.Width))
	positive("paddle.height", float64(c.Paddle.Height))
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.radius", float64(c.Ball.Radius))
	positive("ball.speed", c.Ball.Speed)
	positive("blocks.rows", float64(c.Blocks.Rows))
	positive("blocks.cols", float64(c.Blocks.Cols))
	positive("blocks.width", float64(c.Blocks.Width))
	positive("blocks.height", float64(c.Blocks.Height))
	positive("items.size", float64(c.Items.Size))
	positive("items.fall_speed", c.Items.FallSpeed)
	positive("effects.penetrate_ticks", float64(c.Effects.PenetrateTicks))
	positive("effects.enlarge_ticks", float64(c.Effects.EnlargeTicks))

	if c.Paddle.BottomMargin < 0 {
		bad("paddle.bottom_margin must not be negative, got %d", c.Paddle.BottomMargin)
	}
	if c.Blocks.Gap < 0 {
		bad("blocks.gap must not be negative, got %d", c.Blocks.Gap)
	}
	if c.Scoring.BlockPoints < 0 {
		bad("scoring.block_points must not be negative, got %d", c.Scoring.BlockPoints)
	}
	if c.Items.SpawnChance < 0 || c.Items.SpawnChance > 1 {
		bad("items.spawn_chance must be within [0, 1], got %v", c.Items.SpawnChance)
	}

	if len(c.Blocks.RowColors) == 0 {
		bad("blocks.row_colors must not be empty")
	}
	for _, name := range c.Blocks.RowColors {
		if _, ok := core.ParseColor(name); !ok {
			bad("blocks.row_colors: unknown color %q", name)
		}
	}

	if c.Paddle.Width > c.Screen.Width {
		bad("paddle.width %d exceeds screen.width %d", c.Paddle.Width, c.Screen.Width)
	}
	// The last column may hang past the right edge (the stock layout does),
	// but every block must start on screen so the ball can reach it.
	lastColX := c.Blocks.OffsetX + (c.Blocks.Cols-1)*(c.Blocks.Width+c.Blocks.Gap)
	gridH := c.Blocks.OffsetY + c.Blocks.Rows*(c.Blocks.Height+c.Blocks.Gap) - c.Blocks.Gap
	if c.Blocks.Cols > 0 && lastColX >= c.Screen.Width {
		bad("last block column starts at x=%d, screen is %d wide", lastColX, c.Screen.Width)
	}
	paddleTop := c.Screen.Height - c.Paddle.BottomMargin - c.Paddle.Height
	if c.Blocks.Rows > 0 && gridH >= paddleTop {
		bad("block grid reaches y=%d, paddle top is at y=%d", gridH, paddleTop)
	}

	return errors.Join(errs...)
}

// RowColor returns the color of blocks in the given grid row.
func (c BlocksConfig) RowColor(row int) core.Color {
	if len(c.RowColors) == 0 {
		return core.ColorWhite
	}
	color, ok := core.ParseColor(c.RowColors[row%len(c.RowColors)])
	if !ok {
		return core.ColorWhite
	}
	return color
}

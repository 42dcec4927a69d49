package breakout

import (
	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// PaddleColor is the paddle's fill color.
const PaddleColor = core.ColorBlue

// Paddle is the player's horizontally moving bat.
type Paddle struct {
	Rect    core.Rect
	Speed   float64
	screenW float64
}

// NewPaddle creates a paddle centered at the bottom of the screen.
func NewPaddle(cfg config.GameConfig) *Paddle {
	w := float64(cfg.Paddle.Width)
	h := float64(cfg.Paddle.Height)
	screenW := float64(cfg.Screen.Width)
	screenH := float64(cfg.Screen.Height)

	return &Paddle{
		Rect:    core.NewRect(float64((cfg.Screen.Width-cfg.Paddle.Width)/2), screenH-h-float64(cfg.Paddle.BottomMargin), w, h),
		Speed:   cfg.Paddle.Speed,
		screenW: screenW,
	}
}

// Update moves the paddle by its speed for each held direction and then
// pulls it back inside the screen.
func (p *Paddle) Update(left, right bool) {
	if left {
		p.Rect.Move(-p.Speed, 0)
	}
	if right {
		p.Rect.Move(p.Speed, 0)
	}

	// Positional correction only, there is no paddle velocity to reset.
	p.Rect.X = core.ClampF(p.Rect.X, 0, p.screenW-p.Rect.W)
}

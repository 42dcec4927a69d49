package breakout

import (
	"math"

	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// Ball colors by status.
const (
	BallColor          = core.ColorWhite
	BallPenetrateColor = core.ColorGreen
)

// minPaddleVX keeps a ball leaving the paddle from going straight up.
const minPaddleVX = 1.0

// Ball is the moving circle. Collisions use its bounding square.
type Ball struct {
	Rect      core.Rect
	VX, VY    float64 // Velocity per tick
	BaseSpeed float64

	Penetrating    bool
	PenetrateTicks int // Ticks until penetration wears off
	Enlarged       bool
	EnlargeTicks   int // Ticks until the ball shrinks back

	radius         float64
	penetrateTicks int
	enlargeTicks   int
	screenW        float64
	screenH        float64
}

// NewBall places a ball above the paddle, heading up and randomly left or right.
func NewBall(cfg config.GameConfig, rng *SimpleRNG) *Ball {
	r := float64(cfg.Ball.Radius)
	speed := cfg.Ball.Speed

	vx := speed
	if rng.Intn(2) == 0 {
		vx = -speed
	}

	return &Ball{
		Rect: core.NewRect(
			float64(cfg.Screen.Width/2)-r,
			float64(cfg.Screen.Height-cfg.Paddle.Height-cfg.Ball.StartOffset),
			2*r,
			2*r,
		),
		VX:             vx,
		VY:             -speed,
		BaseSpeed:      speed,
		radius:         r,
		penetrateTicks: cfg.Effects.PenetrateTicks,
		enlargeTicks:   cfg.Effects.EnlargeTicks,
		screenW:        float64(cfg.Screen.Width),
		screenH:        float64(cfg.Screen.Height),
	}
}

// Radius returns the current drawing radius.
func (b *Ball) Radius() float64 {
	if b.Enlarged {
		return 2 * b.radius
	}
	return b.radius
}

// Update moves the ball one tick and resolves wall, paddle and block
// collisions. At most one block is destroyed per tick; it is returned with
// hit set. Status timers only count down on ticks without a block hit.
func (b *Ball) Update(paddle core.Rect, blocks *Blocks) (Block, bool) {
	b.Rect.Move(b.VX, b.VY)

	// Top wall
	if b.Rect.Top() < 0 {
		b.VY = -b.VY
		b.Rect.SetTop(0)
	}

	// Side walls
	if b.Rect.Left() < 0 || b.Rect.Right() > b.screenW {
		b.VX = -b.VX
		if b.Rect.Left() < 0 {
			b.Rect.SetLeft(0)
		}
		if b.Rect.Right() > b.screenW {
			b.Rect.SetRight(b.screenW)
		}
	}

	if b.Rect.Intersects(paddle) {
		b.bounceOffPaddle(paddle)
	}

	if block, hit := blocks.Take(b.Rect); hit {
		if !b.Penetrating {
			b.VY = -b.VY
		}
		return block, true
	}

	b.tickEffects()
	return Block{}, false
}

// bounceOffPaddle reflects the ball upward and steers it by where it hit:
// the further from the paddle center, the steeper the sideways angle.
func (b *Ball) bounceOffPaddle(paddle core.Rect) {
	b.VY = -b.VY
	b.Rect.SetBottom(paddle.Top())

	offset := b.Rect.CenterX() - paddle.CenterX()
	b.VX = offset / (paddle.W / 2) * b.BaseSpeed
	if math.Abs(b.VX) < minPaddleVX {
		if b.VX >= 0 {
			b.VX = minPaddleVX
		} else {
			b.VX = -minPaddleVX
		}
	}
}

// tickEffects counts down active status timers and reverts expired ones.
func (b *Ball) tickEffects() {
	if b.Enlarged {
		b.EnlargeTicks--
		if b.EnlargeTicks <= 0 {
			b.SetSize(false)
		}
	}

	if b.Penetrating {
		b.PenetrateTicks--
		if b.PenetrateTicks <= 0 {
			b.SetPenetrate(false)
		}
	}
}

// OutOfBounds reports whether the ball has dropped fully below the screen.
func (b *Ball) OutOfBounds() bool {
	return b.Rect.Top() > b.screenH
}

// SetPenetrate switches penetration on (with a fresh timer) or off.
func (b *Ball) SetPenetrate(active bool) {
	b.Penetrating = active
	if active {
		b.PenetrateTicks = b.penetrateTicks
	} else {
		b.PenetrateTicks = 0
	}
}

// SetSize switches between normal and enlarged size around the current
// center. Enlarging restarts the timer; shrinking leaves it untouched.
func (b *Ball) SetSize(enlarged bool) {
	b.Enlarged = enlarged
	if enlarged {
		b.EnlargeTicks = b.enlargeTicks
	}

	d := 2 * b.Radius()
	b.Rect.Resize(d, d)
}

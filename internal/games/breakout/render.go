package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// HUD layout in world units.
const (
	hudX       = 10
	hudY       = 10
	effectHUDX = 160
	bannerGap  = 50
)

// Render draws the current game state to the surface.
// It must be called after Step so the frame reflects the finished tick.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorBlack)

	for _, block := range g.blocks.All() {
		dst.FillRect(block.Rect, block.Color)
	}

	for _, item := range g.items {
		dst.FillRect(item.Rect, item.Kind.Color())
	}

	dst.FillRect(g.paddle.Rect, PaddleColor)

	ballColor := BallColor
	if g.ball.Penetrating {
		ballColor = BallPenetrateColor
	}
	cx, cy := g.ball.Rect.Center()
	dst.FillCircle(cx, cy, g.ball.Radius(), ballColor)

	g.drawHUD(dst)

	switch g.status {
	case StatusGameOver:
		g.drawBanner(dst, "GAME OVER", core.ColorRed)
	case StatusGameClear:
		g.drawBanner(dst, "GAME CLEAR!", core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst core.Surface) {
	dst.DrawText(hudX, hudY, fmt.Sprintf("SCORE: %d", g.score), core.ColorWhite)

	if effects := g.effectsHUD(); effects != "" {
		dst.DrawText(effectHUDX, hudY, effects, core.ColorBrightWhite)
	}
}

// effectsHUD lists the active ball effects with their remaining whole seconds.
func (g *Game) effectsHUD() string {
	var parts []string
	if g.ball.Penetrating {
		parts = append(parts, fmt.Sprintf("PEN %ds", g.secondsLeft(g.ball.PenetrateTicks)))
	}
	if g.ball.Enlarged {
		parts = append(parts, fmt.Sprintf("BIG %ds", g.secondsLeft(g.ball.EnlargeTicks)))
	}
	return strings.Join(parts, "  ")
}

// secondsLeft converts remaining ticks to seconds, rounding up so a timer
// shows 1s until it actually expires.
func (g *Game) secondsLeft(ticks int) int {
	rate := g.cfg.Screen.TickRate
	if rate <= 0 {
		return ticks
	}
	return (ticks + rate - 1) / rate
}

func (g *Game) drawBanner(dst core.Surface, title string, c core.Color) {
	midY := float64(g.cfg.Screen.Height) / 2
	dst.DrawTextCentered(midY-bannerGap, title, c)
	dst.DrawTextCentered(midY, "Press 'R' to Restart", core.ColorWhite)
}

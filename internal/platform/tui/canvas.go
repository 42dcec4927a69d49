package tui

import (
	"math"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// Runes used when rasterizing shapes to cells.
const (
	rectRune   = '█'
	circleRune = '●'
)

// CellCanvas rasterizes world-space drawing onto a character Screen.
// The whole world is scaled to fit the screen, so one cell covers a
// worldW/width by worldH/height patch. A cell is painted when its center
// lies inside the shape; shapes too small to cover any cell center still
// paint the cell under their own center so nothing disappears.
type CellCanvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewCellCanvas creates a canvas drawing into screen.
func NewCellCanvas(screen *core.Screen, worldW, worldH int) *CellCanvas {
	return &CellCanvas{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// scale returns cells per world unit on each axis.
func (c *CellCanvas) scale() (sx, sy float64) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// cellCenter returns the world point at the center of cell (x, y).
func cellCenter(x, y int, sx, sy float64) (float64, float64) {
	return (float64(x) + 0.5) / sx, (float64(y) + 0.5) / sy
}

// cellSpan returns the cell range [lo, hi) overlapping world span [a, b).
func cellSpan(a, b, scale float64, limit int) (lo, hi int) {
	lo = core.Clamp(int(math.Floor(a*scale)), 0, limit)
	hi = core.Clamp(int(math.Ceil(b*scale)), 0, limit)
	return lo, hi
}

// plot paints the single cell containing world point (wx, wy).
func (c *CellCanvas) plot(wx, wy float64, r rune, col core.Color) {
	sx, sy := c.scale()
	c.screen.SetCell(int(math.Floor(wx*sx)), int(math.Floor(wy*sy)), r, col)
}

// Clear blanks the screen. The terminal background stands in for the clear
// color.
func (c *CellCanvas) Clear(_ core.Color) {
	c.screen.Clear()
}

// FillRect paints every cell whose center lies inside r. Empty rects draw
// nothing.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 || !r.Valid() {
		return
	}

	x0, x1 := cellSpan(r.Left(), r.Right(), sx, c.screen.Width())
	y0, y1 := cellSpan(r.Top(), r.Bottom(), sy, c.screen.Height())

	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if wx, wy := cellCenter(x, y, sx, sy); r.Contains(wx, wy) {
				c.screen.SetCell(x, y, rectRune, col)
				drawn = true
			}
		}
	}

	if !drawn {
		c.plot(r.CenterX(), r.CenterY(), rectRune, col)
	}
}

// FillCircle paints every cell whose center lies inside the circle.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col core.Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	x0, x1 := cellSpan(cx-radius, cx+radius, sx, c.screen.Width())
	y0, y1 := cellSpan(cy-radius, cy+radius, sy, c.screen.Height())

	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			wx, wy := cellCenter(x, y, sx, sy)
			dx, dy := wx-cx, wy-cy
			if dx*dx+dy*dy <= radius*radius {
				c.screen.SetCell(x, y, circleRune, col)
				drawn = true
			}
		}
	}

	if !drawn {
		c.plot(cx, cy, circleRune, col)
	}
}

// DrawText writes text starting in the cell containing (x, y).
func (c *CellCanvas) DrawText(x, y float64, text string, col core.Color) {
	sx, sy := c.scale()
	c.screen.DrawText(int(math.Floor(x*sx)), int(math.Floor(y*sy)), text, col)
}

// DrawTextCentered writes text centered on the row containing world y.
func (c *CellCanvas) DrawTextCentered(y float64, text string, col core.Color) {
	_, sy := c.scale()
	c.screen.DrawTextCentered(int(math.Floor(y*sy)), text, col)
}

package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// Metrics of ebitenutil's debug font.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// imageSurface draws world-space shapes onto an ebiten image one to one.
type imageSurface struct {
	dst *ebiten.Image

	// scratch holds one line of white debug text before it is tinted
	scratch *ebiten.Image
}

func newImageSurface(width int) *imageSurface {
	return &imageSurface{
		scratch: ebiten.NewImage(width, debugGlyphHeight),
	}
}

func (s *imageSurface) Clear(c core.Color) {
	s.dst.Fill(c.RGBA())
}

func (s *imageSurface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

func (s *imageSurface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}

// DrawText prints with the debug font, which only renders white, so the line
// goes through the scratch image and is tinted on the way to dst.
func (s *imageSurface) DrawText(x, y float64, text string, c core.Color) {
	w := min(len([]rune(text))*debugGlyphWidth, s.scratch.Bounds().Dx())
	if w <= 0 {
		return
	}

	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())

	line := s.scratch.SubImage(image.Rect(0, 0, w, debugGlyphHeight)).(*ebiten.Image)
	s.dst.DrawImage(line, op)
}

func (s *imageSurface) DrawTextCentered(y float64, text string, c core.Color) {
	w := s.dst.Bounds().Dx()
	x := (w - len([]rune(text))*debugGlyphWidth) / 2
	s.DrawText(float64(x), y, text, c)
}

package core

// Surface is a 2D drawing context in world coordinates.
// The game draws into it once per tick after all state updates; frontends
// decide how world units map onto cells or pixels.
type Surface interface {
	// Clear fills the whole surface with a background color.
	Clear(c Color)

	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)

	// FillCircle draws a filled circle centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)

	// DrawText draws a line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)

	// DrawTextCentered draws a line of text horizontally centered on the
	// surface with its top edge at y.
	DrawTextCentered(y float64, text string, c Color)
}

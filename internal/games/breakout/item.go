package breakout

import (
	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// ItemKind identifies the effect a falling item grants.
type ItemKind int

const (
	ItemPenetrate ItemKind = iota // Ball passes through blocks
	ItemEnlarge                   // Ball doubles its radius
	ItemKindCount                 // Sentinel for counting kinds
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemPenetrate:
		return "Penetrate"
	case ItemEnlarge:
		return "Enlarge"
	default:
		return "?"
	}
}

// Color returns the display color for the item kind.
func (k ItemKind) Color() core.Color {
	switch k {
	case ItemPenetrate:
		return core.ColorGreen
	case ItemEnlarge:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// Item is a power-up drifting down from a destroyed block.
type Item struct {
	Rect      core.Rect
	Kind      ItemKind
	FallSpeed float64
}

// NewItem creates an item of the given kind centered at (cx, cy).
func NewItem(cfg config.ItemsConfig, kind ItemKind, cx, cy float64) *Item {
	size := float64(cfg.Size)
	item := &Item{
		Rect:      core.NewRect(0, 0, size, size),
		Kind:      kind,
		FallSpeed: cfg.FallSpeed,
	}
	item.Rect.SetCenter(cx, cy)
	return item
}

// Update moves the item down by its fall speed.
func (it *Item) Update() {
	it.Rect.Move(0, it.FallSpeed)
}

// CheckCollision reports whether the item touches the paddle.
func (it *Item) CheckCollision(paddle core.Rect) bool {
	return it.Rect.Intersects(paddle)
}

// Gone reports whether the item has fallen completely below the screen.
func (it *Item) Gone(screenH float64) bool {
	return it.Rect.Top() > screenH
}

// Package breakout implements Wall Breaker, a single-screen brick breaker
// with two falling power-ups.
package breakout

import (
	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// Block is a static colored brick.
type Block struct {
	Rect  core.Rect
	Color core.Color
}

// Blocks is the ordered collection of blocks still in play.
type Blocks struct {
	list []Block
}

// NewGrid lays out the configured rows and columns of blocks, row by row.
func NewGrid(cfg config.GameConfig) *Blocks {
	b := cfg.Blocks
	list := make([]Block, 0, b.Rows*b.Cols)

	for row := 0; row < b.Rows; row++ {
		color := b.RowColor(row)
		for col := 0; col < b.Cols; col++ {
			list = append(list, Block{
				Rect: core.NewRect(
					float64(b.OffsetX+col*(b.Width+b.Gap)),
					float64(b.OffsetY+row*(b.Height+b.Gap)),
					float64(b.Width),
					float64(b.Height),
				),
				Color: color,
			})
		}
	}

	return &Blocks{list: list}
}

// NewBlocks wraps an explicit list of blocks.
func NewBlocks(list ...Block) *Blocks {
	return &Blocks{list: list}
}

// Len returns the number of blocks left.
func (b *Blocks) Len() int {
	return len(b.list)
}

// Empty reports whether every block has been destroyed.
func (b *Blocks) Empty() bool {
	return len(b.list) == 0
}

// All returns the blocks in collection order. The slice must not be modified.
func (b *Blocks) All() []Block {
	return b.list
}

// Take removes and returns the first block, in collection order, that
// intersects r.
func (b *Blocks) Take(r core.Rect) (Block, bool) {
	for i, block := range b.list {
		if block.Rect.Intersects(r) {
			b.list = append(b.list[:i], b.list[i+1:]...)
			return block, true
		}
	}
	return Block{}, false
}

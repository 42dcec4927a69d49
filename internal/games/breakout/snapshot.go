package breakout

import "math"

// Snapshot contains the observable game state for determinism checks and
// debug logging. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick   uint64
	Status string
	Score  int

	PaddleX float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallRadius     float64
	PenetrateTicks int
	EnlargeTicks   int

	BlocksRemaining int

	// Item state (each item is 3 floats: Kind, X, Y)
	ItemCount int
	ItemData  []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	itemData := make([]float64, len(g.items)*3)
	for i, item := range g.items {
		idx := i * 3
		itemData[idx] = float64(item.Kind)
		itemData[idx+1] = item.Rect.X
		itemData[idx+2] = item.Rect.Y
	}

	return Snapshot{
		Tick:   uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Status: string(g.status),
		Score:  g.score,

		PaddleX: g.paddle.Rect.X,

		BallX:          g.ball.Rect.X,
		BallY:          g.ball.Rect.Y,
		BallVX:         g.ball.VX,
		BallVY:         g.ball.VY,
		BallRadius:     g.ball.Radius(),
		PenetrateTicks: g.ball.PenetrateTicks,
		EnlargeTicks:   g.ball.EnlargeTicks,

		BlocksRemaining: g.blocks.Len(),

		ItemCount: len(g.items),
		ItemData:  itemData,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Status {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.BallRadius)
	h = h*31 + uint64(snap.PenetrateTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnlargeTicks)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemCount)       //#nosec G115 -- hash computation

	for _, v := range snap.ItemData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}

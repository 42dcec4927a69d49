package breakout

import (
	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// Status is the session state.
type Status string

// Session states
const (
	StatusPlaying   Status = "playing"  // Ball in play
	StatusGameOver  Status = "gameover" // Ball fell below the screen
	StatusGameClear Status = "clear"    // Every block destroyed
)

// Terminal reports whether gameplay is frozen waiting for a restart.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusGameClear
}

// Game implements the Wall Breaker session: it owns every entity and
// advances them once per tick.
type Game struct {
	cfg config.GameConfig
	rng *SimpleRNG

	// Game objects
	paddle *Paddle
	ball   *Ball
	blocks *Blocks
	items  []*Item

	// Game state
	status    Status
	score     int
	tickCount int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wallbreaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Wall Breaker"
}

// WorldSize returns the playfield size in world units.
func (g *Game) WorldSize() (width, height int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset seeds the RNG from the runtime config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = NewSimpleRNG(runtime.Seed)
	g.restart()
}

// restart rebuilds every entity in place. The RNG keeps its stream so
// consecutive sessions differ while a seed still reproduces the whole run.
func (g *Game) restart() {
	g.paddle = NewPaddle(g.cfg)
	g.ball = NewBall(g.cfg, g.rng)
	g.blocks = NewGrid(g.cfg)
	g.items = g.items[:0]
	g.status = StatusPlaying
	g.score = 0
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.status

	// Terminal states are frozen until restart
	if g.status.Terminal() {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return g.result(before)
	}

	g.tickCount++

	g.paddle.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight))

	if block, hit := g.ball.Update(g.paddle.Rect, g.blocks); hit {
		g.onBlockDestroyed(block)
	}

	g.updateItems()

	if g.ball.OutOfBounds() {
		g.status = StatusGameOver
	} else if g.blocks.Empty() {
		g.status = StatusGameClear
	}

	return g.result(before)
}

// onBlockDestroyed scores a block and maybe drops an item from its center.
func (g *Game) onBlockDestroyed(block Block) {
	g.score += g.cfg.Scoring.BlockPoints

	if kind, ok := g.rollDrop(); ok {
		cx, cy := block.Rect.Center()
		g.items = append(g.items, NewItem(g.cfg.Items, kind, cx, cy))
	}
}

// rollDrop decides whether a destroyed block drops an item and of which
// kind. Kinds are equally likely.
func (g *Game) rollDrop() (ItemKind, bool) {
	if g.rng.Float64() >= g.cfg.Items.SpawnChance {
		return 0, false
	}
	return ItemKind(g.rng.Intn(int(ItemKindCount))), true
}

// updateItems moves every item once, applies the ones caught by the paddle
// and drops the ones that left the screen. Compaction happens in place so
// each item is visited exactly once.
func (g *Game) updateItems() {
	screenH := float64(g.cfg.Screen.Height)

	kept := g.items[:0]
	for _, item := range g.items {
		item.Update()

		if item.CheckCollision(g.paddle.Rect) {
			g.applyItem(item.Kind)
			continue
		}
		if item.Gone(screenH) {
			continue
		}
		kept = append(kept, item)
	}

	// Release pointers left beyond the compacted length
	clear(g.items[len(kept):])
	g.items = kept
}

// applyItem grants an item's effect to the ball.
func (g *Game) applyItem(kind ItemKind) {
	switch kind {
	case ItemPenetrate:
		g.ball.SetPenetrate(true)
	case ItemEnlarge:
		g.ball.SetSize(true)
	}
}

func (g *Game) result(before Status) core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Changed: g.status != before,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status.Terminal(),
		Cleared:  g.status == StatusGameClear,
	}
}

// Status returns the current session state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of simulated ticks since the session started.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Blocks returns the remaining blocks.
func (g *Game) Blocks() *Blocks {
	return g.blocks
}

// Items returns the falling items. The slice must not be modified.
func (g *Game) Items() []*Item {
	return g.items
}

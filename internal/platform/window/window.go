// Package window runs Wall Breaker in a desktop window using Ebiten.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/wall-breaker/internal/core"
	"github.com/vovakirdan/wall-breaker/internal/games/breakout"
)

// Key bindings
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game adapts a breakout session to ebiten.Game.
type Game struct {
	game    *breakout.Game
	surface *imageSurface
	logger  *log.Logger
	input   core.InputFrame
	width   int
	height  int
}

// New creates the window adapter and resets the session with cfg.
func New(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	w, h := game.WorldSize()
	return &Game{
		game:    game,
		surface: newImageSurface(w),
		logger:  logger,
		input:   core.NewInputFrame(),
		width:   w,
		height:  h,
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Update polls the keyboard and advances the game one tick.
func (g *Game) Update() error {
	if anyPressed(quitKeys) {
		return ebiten.Termination
	}

	g.input.Clear()
	if anyPressed(leftKeys) {
		g.input.Set(core.ActionLeft)
	}
	if anyPressed(rightKeys) {
		g.input.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.Set(core.ActionRestart)
	}

	result := g.game.Step(g.input)
	if result.Changed {
		g.logger.Debug("status changed", "status", g.game.Status(), "score", result.State.Score)
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.game.Render(g.surface)
}

// Layout keeps the logical canvas at world size regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, cfg, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	g.logger.Info("window opened", "width", g.width, "height", g.height, "tps", cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

// holdTicks is how long a direction stays held after a key press.
// Terminals report presses and auto-repeats but never releases, so a
// direction is treated as held until repeats stop arriving.
const holdTicks = 8

// helpHeight is the number of rows reserved under the playfield.
const helpHeight = 1

// Game is the simulation driven by the terminal frontend.
type Game interface {
	ID() string
	WorldSize() (width, height int)
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst core.Surface)
	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	canvas     *CellCanvas
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState

	// Held-key emulation: ticks left for each direction
	holdLeft  int
	holdRight int
	restart   bool

	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0))
	worldW, worldH := game.WorldSize()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        screen,
		canvas:        NewCellCanvas(screen, worldW, worldH),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// WithScreenshotDir returns a copy of the model saving screenshots to dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.screenshotDir = dir
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".wallbreaker", "screenshots")
	}
	return filepath.Join(home, ".wallbreaker", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.holdLeft = holdTicks
		m.holdRight = 0
	case core.ActionRight:
		m.holdRight = holdTicks
		m.holdLeft = 0
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world keeps its size; only the rasterization changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()
	if m.holdLeft > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.holdRight--
	}
	if m.restart {
		m.inputFrame.Set(core.ActionRestart)
		m.restart = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Changed {
		m.logStatus(result.State)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logStatus records a session status transition.
func (m Model) logStatus(state core.GameState) {
	switch {
	case state.Cleared:
		m.logger.Debug("game cleared", "score", state.Score)
	case state.GameOver:
		m.logger.Debug("game over", "score", state.Score)
	default:
		m.logger.Debug("game restarted")
	}
}

// saveScreenshot renders the current frame and writes it as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

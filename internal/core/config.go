package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use it to describe their viewport and to seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters (terminal frontends)
	ScreenH  int   // Viewport height in characters (terminal frontends)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session reached a terminal state
	Cleared  bool // Whether the terminal state is a win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Changed is set when the tick moved the session to a different status.
	Changed bool
}

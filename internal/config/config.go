// Package config provides YAML-based game configuration loading and
// validation for Wall Breaker.
package config

// GameConfig contains all tunable parameters of a session.
// It is loaded once at startup and handed to every component by value.
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Items   ItemsConfig   `yaml:"items"`
	Effects EffectsConfig `yaml:"effects"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ScreenConfig defines the world canvas and simulation rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	BottomMargin int     `yaml:"bottom_margin"` // Gap between paddle bottom and screen bottom
	Speed        float64 `yaml:"speed"`         // Pixels per tick
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius      int     `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Base speed in pixels per tick
	StartOffset int     `yaml:"start_offset"` // Distance from paddle top line to ball top at start
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Gap       int      `yaml:"gap"`
	OffsetX   int      `yaml:"offset_x"`
	OffsetY   int      `yaml:"offset_y"`
	RowColors []string `yaml:"row_colors"` // Cycled by row index
}

// ItemsConfig defines falling power-up items.
type ItemsConfig struct {
	Size        int     `yaml:"size"`
	FallSpeed   float64 `yaml:"fall_speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per destroyed block, 0..1
}

// EffectsConfig defines power-up durations in ticks.
type EffectsConfig struct {
	PenetrateTicks int `yaml:"penetrate_ticks"`
	EnlargeTicks   int `yaml:"enlarge_ticks"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	BlockPoints int `yaml:"block_points"`
}

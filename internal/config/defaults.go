package config

import (
	_ "embed"
)

//go:embed defaults/wallbreaker.yaml
var defaultYAML []byte

// Default returns the built-in Wall Breaker configuration.
func Default() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomMargin: 20,
			Speed:        10,
		},
		Ball: BallConfig{
			Radius:      10,
			Speed:       5,
			StartOffset: 50,
		},
		Blocks: BlocksConfig{
			Rows:      4,
			Cols:      10,
			Width:     75,
			Height:    30,
			Gap:       5,
			OffsetX:   20,
			OffsetY:   30,
			RowColors: []string{"red", "yellow", "green", "blue"},
		},
		Items: ItemsConfig{
			Size:        20,
			FallSpeed:   3,
			SpawnChance: 0.3,
		},
		Effects: EffectsConfig{
			PenetrateTicks: 600, // 10 seconds at 60 FPS
			EnlargeTicks:   600,
		},
		Scoring: ScoringConfig{
			BlockPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

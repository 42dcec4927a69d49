package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/wall-breaker/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("paddle:\n  speed: 14\nitems:\n  spawn_chance: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Paddle.Speed != 14 {
		t.Errorf("Paddle.Speed = %v, expected 14", cfg.Paddle.Speed)
	}
	if cfg.Items.SpawnChance != 0.5 {
		t.Errorf("Items.SpawnChance = %v, expected 0.5", cfg.Items.SpawnChance)
	}
	// Untouched keys keep their defaults
	if cfg.Paddle.Width != 100 || cfg.Blocks.Rows != 4 || cfg.Scoring.BlockPoints != 10 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("paddle: [unclosed")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"zero paddle speed", func(c *GameConfig) { c.Paddle.Speed = 0 }, "paddle.speed"},
		{"negative ball radius", func(c *GameConfig) { c.Ball.Radius = -1 }, "ball.radius"},
		{"spawn chance above one", func(c *GameConfig) { c.Items.SpawnChance = 1.5 }, "items.spawn_chance"},
		{"no row colors", func(c *GameConfig) { c.Blocks.RowColors = nil }, "row_colors must not be empty"},
		{"unknown color", func(c *GameConfig) { c.Blocks.RowColors = []string{"red", "mauve"} }, `unknown color "mauve"`},
		{"paddle wider than screen", func(c *GameConfig) { c.Paddle.Width = 900 }, "paddle.width 900"},
		{"grid too wide", func(c *GameConfig) { c.Blocks.Cols = 11 }, "last block column"},
		{"grid too tall", func(c *GameConfig) { c.Blocks.Rows = 20 }, "paddle top"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Paddle.Speed = 0
	cfg.Ball.Speed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "paddle.speed") || !strings.Contains(msg, "ball.speed") {
		t.Errorf("joined error should mention both fields, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  block_points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Scoring.BlockPoints != 25 {
		t.Errorf("BlockPoints = %d, expected 25", cfg.Scoring.BlockPoints)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  speed: -2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real user or working-directory config
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("embedded fallback should equal Default()")
	}
}

func TestLoadUsesLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "wallbreaker.yaml"), []byte("paddle:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if source != filepath.Join("configs", "wallbreaker.yaml") {
		t.Errorf("source = %q, expected configs/wallbreaker.yaml", source)
	}
	if cfg.Paddle.Speed != 7 {
		t.Errorf("Paddle.Speed = %v, expected 7", cfg.Paddle.Speed)
	}
}

func TestRowColor(t *testing.T) {
	b := Default().Blocks
	expected := []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorBlue, core.ColorRed}
	for row, want := range expected {
		if got := b.RowColor(row); got != want {
			t.Errorf("RowColor(%d) = %v, expected %v", row, got, want)
		}
	}

	empty := BlocksConfig{}
	if got := empty.RowColor(0); got != core.ColorWhite {
		t.Errorf("RowColor with no colors = %v, expected white", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-breaker/internal/config"
	"github.com/vovakirdan/wall-breaker/internal/core"
)

// session bundles what every frontend needs to start a game.
type session struct {
	game    config.GameConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  func()
}

// newLogger creates a logger writing to w at the level chosen by --debug.
func newLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLog returns the log destination. An explicit --log-file always wins;
// otherwise terminal play discards logs and the other commands use stderr.
func openLog(path string, ownsTerminal bool) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		return f, func() { f.Close() }, nil
	}
	if ownsTerminal {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

// runtimeConfig merges the flags into the loaded config. --fps overrides
// the configured tick rate only when it was given explicitly.
func runtimeConfig(cmd *cobra.Command, cfg *config.GameConfig, width, height int) (core.RuntimeConfig, error) {
	if cmd.Flags().Changed("fps") {
		if flagFPS <= 0 {
			return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cfg.Screen.TickRate = flagFPS
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Screen.TickRate,
		Seed:     flagSeed,
	}, nil
}

// newSession loads the configuration and sets up logging for a command.
func newSession(cmd *cobra.Command, prefix string, ownsTerminal bool, width, height int) (*session, error) {
	w, closer, err := openLog(flagLogFile, ownsTerminal)
	if err != nil {
		return nil, err
	}
	logger := newLogger(w, prefix, flagDebug)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		closer()
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	rc, err := runtimeConfig(cmd, &cfg, width, height)
	if err != nil {
		closer()
		return nil, err
	}

	return &session{
		game:    cfg,
		runtime: rc,
		logger:  logger,
		closer:  closer,
	}, nil
}

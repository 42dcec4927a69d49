package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-breaker/internal/config"
)

func newFlagCommand(t *testing.T) *cobra.Command {
	t.Helper()
	oldFPS, oldSeed := flagFPS, flagSeed
	t.Cleanup(func() { flagFPS, flagSeed = oldFPS, oldSeed })

	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "")
	return cmd
}

func TestRuntimeConfig(t *testing.T) {
	t.Run("config tick rate by default", func(t *testing.T) {
		cmd := newFlagCommand(t)
		cfg := config.Default()
		cfg.Screen.TickRate = 30

		rc, err := runtimeConfig(cmd, &cfg, 100, 40)
		if err != nil {
			t.Fatalf("runtimeConfig failed: %v", err)
		}
		if rc.TickRate != 30 {
			t.Errorf("TickRate = %d, expected 30", rc.TickRate)
		}
		if rc.ScreenW != 100 || rc.ScreenH != 40 {
			t.Errorf("Screen = %dx%d, expected 100x40", rc.ScreenW, rc.ScreenH)
		}
	})

	t.Run("explicit fps wins", func(t *testing.T) {
		cmd := newFlagCommand(t)
		if err := cmd.Flags().Set("fps", "120"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("seed", "7"); err != nil {
			t.Fatal(err)
		}
		cfg := config.Default()

		rc, err := runtimeConfig(cmd, &cfg, 80, 24)
		if err != nil {
			t.Fatalf("runtimeConfig failed: %v", err)
		}
		if rc.TickRate != 120 || cfg.Screen.TickRate != 120 {
			t.Errorf("TickRate = %d (config %d), expected 120", rc.TickRate, cfg.Screen.TickRate)
		}
		if rc.Seed != 7 {
			t.Errorf("Seed = %d, expected 7", rc.Seed)
		}
	})

	t.Run("non-positive fps rejected", func(t *testing.T) {
		cmd := newFlagCommand(t)
		if err := cmd.Flags().Set("fps", "0"); err != nil {
			t.Fatal(err)
		}
		cfg := config.Default()

		if _, err := runtimeConfig(cmd, &cfg, 80, 24); err == nil {
			t.Error("Expected an error for --fps 0")
		}
	})
}

func TestOpenLog(t *testing.T) {
	w, closer, err := openLog("", true)
	if err != nil || w != io.Discard {
		t.Errorf("openLog(play) = %v, %v, expected io.Discard", w, err)
	}
	closer()

	w, closer, err = openLog("", false)
	if err != nil || w != os.Stderr {
		t.Errorf("openLog(serve) = %v, %v, expected stderr", w, err)
	}
	closer()

	path := filepath.Join(t.TempDir(), "wallbreaker.log")
	w, closer, err = openLog(path, true)
	if err != nil {
		t.Fatalf("openLog(file) failed: %v", err)
	}
	logger := newLogger(w, "test", true)
	logger.Debug("hello", "k", 1)
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Log file = %q, expected the debug line", data)
	}

	if _, _, err := openLog(filepath.Join(t.TempDir(), "missing", "x.log"), true); err == nil {
		t.Error("Expected an error for a log file in a missing directory")
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Errorf("config output differs from the embedded defaults:\n%s", buf.String())
	}
}

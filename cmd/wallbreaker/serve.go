package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-breaker/internal/games/breakout"
	"github.com/vovakirdan/wall-breaker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Wall Breaker SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wallbreaker/host_key

Examples:
  wallbreaker serve                           # Listen on :23234 with auto-generated key
  wallbreaker serve --ssh :2222               # Listen on port 2222
  wallbreaker serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd, "wallbreaker-ssh", false, 0, 0)
	if err != nil {
		return err
	}
	defer s.closer()

	gameCfg := s.game
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    s.runtime.TickRate,
		Seed:        s.runtime.Seed,
		NewGame:     func() tui.Game { return breakout.New(gameCfg) },
		Logger:      s.logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		s.logger.Info("connect with ssh", "command", "ssh localhost -p "+port)
	}
	return server.ListenAndServe()
}

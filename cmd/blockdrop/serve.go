package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/game"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blockdrop SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Every finished session is
journaled to the server's replay database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockdrop/host_key

Examples:
  blockdrop serve                           # Listen on :23234 with auto-generated key
  blockdrop serve --ssh :2222               # Listen on port 2222
  blockdrop serve --host-key ./my_host_key  # Use specific host key

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

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("blockdrop-ssh")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	journal, closeJournal := openJournal(logger)
	defer closeJournal()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Rules:       game.RulesFromConfig(cfg),
		TickRate:    flagFPS,
		Palette:     cfg.Palette,
	}, journal, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("connect with: ssh localhost -p <port>, press Ctrl+C to stop")
	return server.ListenAndServe()
}

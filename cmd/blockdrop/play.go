package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/game"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The session is journaled when it ends.

Controls:
  Left/Right - Move
  Down       - Soft drop
  Q          - Rotate counter-clockwise
  W          - Rotate clockwise
  Esc/Ctrl+C - Quit

Examples:
  blockdrop play
  blockdrop play --seed 42
  blockdrop play --config ./my-blockdrop.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("blockdrop")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	journal, closeJournal := openJournal(logger)
	defer closeJournal()
	cues, closeCues := newCues(cfg.Audio, logger)
	defer closeCues()

	s := session.New(session.Options{
		Frontend: "terminal",
		Rules:    game.RulesFromConfig(cfg),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Journal: journal,
		Cues:    cues,
		Logger:  logger,
	})

	if err := tui.Run(s, tui.NewTheme(nil, cfg.Palette), width, height); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	fmt.Printf("Score: %d\n", s.Game().Score())
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/game"
	"github.com/vovakirdan/blockdrop/internal/gesture"
	"github.com/vovakirdan/blockdrop/internal/platform/gfx"
	"github.com/vovakirdan/blockdrop/internal/session"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open a window and play with the keyboard, the on-screen buttons or touch.

Touch gestures:
  Swipe left/right - Move
  Swipe down       - Soft drop
  Tap              - Rotate clockwise

Set display.block_image in the config to draw blocks with a tile image.

Examples:
  blockdrop window
  blockdrop window --scale 3`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 2, "Window pixels per canvas pixel")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("blockdrop")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	journal, closeJournal := openJournal(logger)
	defer closeJournal()
	cues, closeCues := newCues(cfg.Audio, logger)
	defer closeCues()

	s := session.New(session.Options{
		Frontend: "window",
		Rules:    game.RulesFromConfig(cfg),
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Arena.Width * cfg.Display.CellSize,
			ScreenH:  cfg.Arena.Height * cfg.Display.CellSize,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Journal: journal,
		Cues:    cues,
		Logger:  logger,
	})

	return gfx.Run(s, gfx.Options{
		Arena:      cfg.Arena,
		Display:    cfg.Display,
		Palette:    cfg.Palette,
		Thresholds: gesture.ThresholdsFromConfig(cfg.Touch),
		TickRate:   flagFPS,
		Scale:      flagScale,
		Logger:     logger,
	})
}

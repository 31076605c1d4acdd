package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start blockdrop with a title menu",
	Long: `Start blockdrop in interactive menu mode. This is also what running
blockdrop without a command does.

After a terminal game or the replay browser closes, you return to the menu.
The window can only be opened once per run, so picking it ends the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  blockdrop
  blockdrop menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		choice, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}

		switch choice {
		case tui.MenuPlay:
			err = runPlay(cmd, args)
		case tui.MenuWindow:
			return runWindow(cmd, args)
		case tui.MenuReplays:
			err = runReplaysBrowse(cmd, args)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// blockdrop is a falling-block puzzle game for the terminal, a window and SSH.
//
// Usage:
//
//	blockdrop                   - Title menu
//	blockdrop play              - Play in the terminal
//	blockdrop window            - Play in a graphical window
//	blockdrop serve             - Start SSH server for remote play
//	blockdrop replays           - List journaled sessions
//	blockdrop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML configuration
//	--db <path>         - Set journal path (default: ~/.blockdrop/replays.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdrop",
	Short: "blockdrop - stack falling pieces and clear rows",
	Long: `blockdrop is a falling-block puzzle game. Pieces fall into a 10x20 arena;
fill a row completely to clear it and score.

Available commands:
  menu     - Title menu (the default without a command)
  play     - Play in the terminal
  window   - Play in a graphical window (mouse and touch supported)
  serve    - Start SSH server for remote play
  replays  - List, verify and browse journaled sessions
  config   - Print the effective configuration

Examples:
  blockdrop play
  blockdrop window --seed 42
  blockdrop serve --ssh :2222
  blockdrop replays verify 3`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockdrop/replays.db", "Path to replay journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration blockdrop would use, after layering the config
file over the built-in defaults. Redirect it to a file to start customizing:

  blockdrop config > ~/.blockdrop/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

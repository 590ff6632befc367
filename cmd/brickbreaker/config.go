package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
search path and --difficulty are applied. The output is valid YAML and can
be saved as ~/.brickbreaker/config.yaml.

Examples:
  brickbreaker config
  brickbreaker config --difficulty hard > ~/.brickbreaker/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

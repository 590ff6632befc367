package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

var flagLevelsShow bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long: `List the levels in play order with their brick counts. A level pack
given with --levels is also checked against the configured field.

Examples:
  brickbreaker levels
  brickbreaker levels --show
  brickbreaker levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsShow, "show", false, "Draw each level's brick layout")
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadLevels()
	if err != nil {
		return err
	}
	if err := game.ValidateLevels(catalog, cfg); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Levels:")
	fmt.Fprintln(out)

	for i, level := range catalog {
		fmt.Fprintf(out, "  %d. %-32s %2d bricks\n", i+1, level.Description, level.BrickCount())
		if !flagLevelsShow {
			continue
		}
		for _, row := range level.Layout {
			var sb strings.Builder
			for _, cell := range row {
				if cell != 0 {
					sb.WriteString("██")
				} else {
					sb.WriteString("  ")
				}
			}
			fmt.Fprintf(out, "     %s\n", sb.String())
		}
		fmt.Fprintln(out)
	}
	return nil
}

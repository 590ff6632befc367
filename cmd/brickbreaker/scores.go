package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 5
  brickbreaker scores --player alice
  brickbreaker scores --tui
  brickbreaker scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil
	}

	if flagScoresTUI {
		runtime, err := runtimeConfig()
		if err != nil {
			return err
		}
		return tui.RunScoreboard(store, flagScoresPlayer, flagScoresLimit, runtime.ScreenW, runtime.ScreenH)
	}

	var scores []storage.ScoreEntry
	title := "High Scores"
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
		title = fmt.Sprintf("High Scores - %s", flagScoresPlayer)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'brickbreaker' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-20s  %-8d  %s\n", i+1, entry.PlayerName, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if stats, err := store.Stats(); err == nil {
		fmt.Fprintf(out, "Best: %d  Games: %d  Players: %d\n", stats.HighScore, stats.GamesCount, stats.Players)
	}
	return nil
}

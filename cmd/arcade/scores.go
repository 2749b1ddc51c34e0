package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/director-arcade/internal/platform/tui"
	"github.com/vovakirdan/director-arcade/internal/registry"
	"github.com/vovakirdan/director-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the best runs of the specified game.

Examples:
  arcade scores snake
  arcade scores breakout --limit 25
  arcade scores pingpong --interactive
  arcade scores bounce --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the game")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse scores in the scoreboard screen")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkGame(gameID); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	if flagScoresTUI {
		rt := terminalRuntime()
		return tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH, gameID)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", gameTitle(gameID))
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "----------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-10s  %s\n", i+1, e.Score, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}

func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

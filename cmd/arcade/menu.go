package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/director-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game with the arrow keys, choose a difficulty with Left/Right and
press Enter. Leaving a game (B/Esc when no round is running) returns to
the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k     - Navigate games
  Left/Right      - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  arcade menu
  arcade menu --difficulty hard
  arcade menu --fps 30 --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty preset")
	menuCmd.Flags().StringArrayVar(&flagSet, "set", nil, "Override a config value (key=value) in every game, repeatable")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkDifficulty(flagDifficulty); err != nil {
		return err
	}
	overrides, err := parseOverrides(flagSet)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("arcade")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	defer closeStore(store)

	return tui.RunSession(tui.Options{
		Store:      store,
		Runtime:    terminalRuntime(),
		Difficulty: flagDifficulty,
		Overrides:  overrides,
		Logger:     logger,
	})
}

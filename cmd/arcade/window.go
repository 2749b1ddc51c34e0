package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/platform/window"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game there.
The window shows the same cell canvas as the terminal, with every cell
drawn as an 8x16 pixel block. Resizing the window resizes the grid.

Controls are the same as 'arcade play'; Q closes the window.

Examples:
  arcade window snake
  arcade window bounce --cols 120 --rows 50
  arcade window breakout --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Initial window width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 40, "Initial window height in cells")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkGame(gameID); err != nil {
		return err
	}
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

	err = window.Run(gameID, window.Options{
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagCols,
			ScreenH:  flagRows,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Overrides:  overrides,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

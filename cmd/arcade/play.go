package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/director-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Space/Enter     - Start, or restart after game over
  Arrows/WASD     - Move
  R               - Reset (bounce)
  B/Esc           - Leave when no round is running
  Ctrl+S          - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at 0.75x speed
  normal - Start at the configured speed
  hard   - Start at 1.5x speed
  fixed  - Configured speed, no speed-ups during play

Config overrides (--set, repeatable):
  bgColor, gameSpeed, gameWidth, gameHeight, gameScore, cellSize, gameStatus

Examples:
  arcade play snake
  arcade play breakout --difficulty easy
  arcade play pingpong --difficulty fixed
  arcade play snake --set gameSpeed=20 --set bgColor=#101010
  arcade play bounce --config ./my-bounce.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape a single game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringArrayVar(&flagSet, "set", nil, "Override a config value (key=value), repeatable")
}

func runPlay(_ *cobra.Command, args []string) error {
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

	logger.Info("starting game", "game", gameID, "difficulty", flagDifficulty, "fps", flagFPS)
	err = tui.Run(gameID, tui.Options{
		Store:      store,
		Runtime:    terminalRuntime(),
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

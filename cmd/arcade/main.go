// arcade plays Director-based arcade demos in the terminal, in a window,
// or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>       - Host frame rate (default: 60)
//	--seed <value>     - RNG seed for reproducible gameplay
//	--db <path>        - Scores database (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--log-file <path>  - Write logs to a file (env ARCADE_LOG_FILE)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/director-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/director-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/director-arcade/internal/games/pingpong"
	_ "github.com/vovakirdan/director-arcade/internal/games/snake"
	"github.com/vovakirdan/director-arcade/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - Snake, Breakout, Ping-Pong and Bounce in your terminal",
	Long: `Arcade runs small canvas games on a shared fixed-timestep loop.
Every game draws into the same cell canvas, so it can be played in the
terminal, in a desktop window, or over SSH.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play snake
  arcade play breakout --difficulty hard
  arcade window bounce
  arcade menu
  arcade serve --ssh :2222
  arcade scores pingpong`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnvDefaults,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database (env ARCADE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env ARCADE_LOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyEnvDefaults fills flags the user did not pass from the environment
// (including values godotenv loaded from .env).
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		if v := os.Getenv("ARCADE_DB"); v != "" {
			flagDBPath = v
		}
	}
	if !flags.Changed("log-file") {
		if v := os.Getenv("ARCADE_LOG_FILE"); v != "" {
			flagLogFile = v
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

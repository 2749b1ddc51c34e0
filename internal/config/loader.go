package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/director-arcade/internal/director"
)

// Load reads the configuration for gameID on top of fallback.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files further down the search path are skipped with a warning.
func Load[T any](gameID, customPath string, fallback T, logger *log.Logger) (T, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		logger.Debug("config loaded", "game", gameID, "path", customPath)
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			logger.Warn("skipping unreadable config", "game", gameID, "path", path, "error", err)
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Warn("skipping malformed config", "game", gameID, "path", path, "error", err)
			continue
		}
		logger.Debug("config loaded", "game", gameID, "path", path)
		return cfg, nil
	}

	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		logger.Warn("embedded config unusable, using built-in defaults", "game", gameID, "error", err)
		return fallback, nil
	}
	return cfg, nil
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string, logger *log.Logger) (SnakeConfig, error) {
	return Load("snake", customPath, DefaultSnakeConfig(), logger)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string, logger *log.Logger) (BreakoutConfig, error) {
	return Load("breakout", customPath, DefaultBreakoutConfig(), logger)
}

// LoadPingPong loads Ping-Pong configuration.
func LoadPingPong(customPath string, logger *log.Logger) (PingPongConfig, error) {
	return Load("pingpong", customPath, DefaultPingPongConfig(), logger)
}

// LoadBounce loads Bounce simulator configuration.
func LoadBounce(customPath string, logger *log.Logger) (BounceConfig, error) {
	return Load("bounce", customPath, DefaultBounceConfig(), logger)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset scales the starting speed for a preset. The fixed preset
// keeps the configured speed and turns the ramp off.
func ApplyPreset(board *director.Settings, ramp *RampConfig, preset DifficultyPreset) {
	if board.Speed > 0 {
		board.Speed *= SpeedScaleForPreset(preset)
	}
	if ramp != nil && IsFixedPreset(preset) {
		ramp.Enabled = false
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Board, &cfg.Ramp, preset)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Board, &cfg.Ramp, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 14
	case DifficultyHard:
		cfg.Paddle.Width = 8
	}
}

// ApplyPingPongPreset modifies the config based on a difficulty preset.
func ApplyPingPongPreset(cfg *PingPongConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Board, nil, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Paddles.Cells = 7
	case DifficultyHard:
		cfg.Paddles.Cells = 4
	case DifficultyFixed:
		cfg.Gameplay.SpeedFactor = 1
	}
}

// ApplyBouncePreset modifies the config based on a difficulty preset.
// The simulator has no ramp; presets only change the tick rate.
func ApplyBouncePreset(cfg *BounceConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Board, nil, preset)
}

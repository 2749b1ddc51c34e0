// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "github.com/vovakirdan/director-arcade/internal/director"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  director.Settings `yaml:"board"`
	Colors SnakeColors       `yaml:"colors"`
	Ramp   RampConfig        `yaml:"ramp"`
}

// SnakeColors defines the Snake palette.
type SnakeColors struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
	Wall  string `yaml:"wall"`
	Text  string `yaml:"text"`
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Board  director.Settings `yaml:"board"`
	Bricks BreakoutBricks    `yaml:"bricks"`
	Paddle BreakoutPaddle    `yaml:"paddle"`
	Colors BreakoutColors    `yaml:"colors"`
	Ramp   RampConfig        `yaml:"ramp"`
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Total  int      `yaml:"total"`
	Width  int      `yaml:"width"`  // Cells per brick
	Colors []string `yaml:"colors"` // Cycled per row
}

// BreakoutPaddle defines paddle parameters for Breakout.
type BreakoutPaddle struct {
	Width int `yaml:"width"` // Cells
	Step  int `yaml:"step"`  // Cells moved per key press
}

// BreakoutColors defines the Breakout palette.
type BreakoutColors struct {
	Board  string `yaml:"board"`
	Wall   string `yaml:"wall"`
	Paddle string `yaml:"paddle"`
	Ball   string `yaml:"ball"`
	Text   string `yaml:"text"`
}

// PingPongConfig contains all configuration for the Ping-Pong game.
type PingPongConfig struct {
	Board    director.Settings `yaml:"board"`
	Paddles  PingPongPaddles   `yaml:"paddles"`
	Gameplay PingPongGameplay  `yaml:"gameplay"`
	Colors   PingPongColors    `yaml:"colors"`
}

// PingPongPaddles defines paddle parameters for Ping-Pong.
type PingPongPaddles struct {
	Cells  int `yaml:"cells"`  // Paddle height
	Step   int `yaml:"step"`   // Rows moved per key press
	Offset int `yaml:"offset"` // Distance from the side wall
}

// PingPongGameplay defines scoring rules for Ping-Pong.
type PingPongGameplay struct {
	WinScore    int     `yaml:"win_score"`    // 0 plays forever
	SpeedFactor float64 `yaml:"speed_factor"` // Applied on every point
	MaxSpeed    float64 `yaml:"max_speed"`
}

// PingPongColors defines the Ping-Pong palette.
type PingPongColors struct {
	Ball   string `yaml:"ball"`
	P1     string `yaml:"p1"`
	P2     string `yaml:"p2"`
	Lines  string `yaml:"lines"`
	Scores string `yaml:"scores"`
}

// BounceConfig contains all configuration for the Bounce simulator.
// Physics values are fractions of the parent circle's radius.
type BounceConfig struct {
	Board   director.Settings `yaml:"board"`
	Physics BouncePhysics     `yaml:"physics"`
	Colors  BounceColors      `yaml:"colors"`
}

// BouncePhysics defines the simulation parameters.
type BouncePhysics struct {
	ParentRatio float64 `yaml:"parent_ratio"` // Parent radius as a share of board height
	BallRadius  float64 `yaml:"ball_radius"`
	LaunchSpeed float64 `yaml:"launch_speed"`
	Gravity     float64 `yaml:"gravity"`
	Damping     float64 `yaml:"damping"`
	StartOffset float64 `yaml:"start_offset"` // Distance above the center
	MaxAnchors  int     `yaml:"max_anchors"`
}

// BounceColors defines the Bounce palette.
type BounceColors struct {
	Board  string `yaml:"board"`
	Parent string `yaml:"parent"`
	Ball   string `yaml:"ball"`
	Lines  string `yaml:"lines"`
}

// RampConfig defines how game speed grows as the player scores.
type RampConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Every    int     `yaml:"every"`     // Events between speed-ups
	Factor   float64 `yaml:"factor"`    // Speed multiplier per step
	MaxSpeed float64 `yaml:"max_speed"` // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// SpeedScaleForPreset returns the starting-speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed ramps.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

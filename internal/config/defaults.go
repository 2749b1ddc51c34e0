package config

import (
	_ "embed"

	"github.com/vovakirdan/director-arcade/internal/director"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/pingpong.yaml
var defaultPingPongYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

func defaultBoard(speed float64) director.Settings {
	return director.Settings{
		BgColor:     director.DefaultBgColor,
		WidthRatio:  100,
		HeightRatio: 100,
		Speed:       speed,
		CellSize:    director.DefaultCellSize,
		Aspect:      director.DefaultAspect,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: defaultBoard(10),
		Colors: SnakeColors{
			Snake: "purple",
			Food:  "red",
			Wall:  "brown",
			Text:  "white",
		},
		Ramp: RampConfig{
			Enabled:  true,
			Every:    5,
			Factor:   2.0,
			MaxSpeed: 40,
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	board := defaultBoard(20)
	board.WidthRatio, board.HeightRatio = 90, 90
	board.Fixed = true
	return BreakoutConfig{
		Board: board,
		Bricks: BreakoutBricks{
			Total:  50,
			Width:  5,
			Colors: []string{"rgb(0 0 124 / 75%)"},
		},
		Paddle: BreakoutPaddle{
			Width: 10,
			Step:  2,
		},
		Colors: BreakoutColors{
			Board:  "rgb(219 219 219 / 15%)",
			Wall:   "gray",
			Paddle: "red",
			Ball:   "yellow",
			Text:   "rgb(255 0 0 / 80%)",
		},
		Ramp: RampConfig{
			Enabled:  true,
			Every:    10,
			Factor:   1.2,
			MaxSpeed: 60,
		},
	}
}

// DefaultPingPongConfig returns the default Ping-Pong configuration.
func DefaultPingPongConfig() PingPongConfig {
	board := defaultBoard(15)
	board.WidthRatio, board.HeightRatio = 90, 90
	board.Fixed = true
	return PingPongConfig{
		Board: board,
		Paddles: PingPongPaddles{
			Cells:  5,
			Step:   2,
			Offset: 2,
		},
		Gameplay: PingPongGameplay{
			WinScore:    7,
			SpeedFactor: 1.5,
			MaxSpeed:    60,
		},
		Colors: PingPongColors{
			Ball:   "yellow",
			P1:     "rgb(255 0 0 / 50%)",
			P2:     "rgb(0 0 255 / 50%)",
			Lines:  "rgb(255 255 255 / 30%)",
			Scores: "rgb(255 255 255 / 30%)",
		},
	}
}

// DefaultBounceConfig returns the default Bounce simulator configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Board: defaultBoard(60),
		Physics: BouncePhysics{
			ParentRatio: 0.45,
			BallRadius:  0.025,
			LaunchSpeed: 0.025,
			Gravity:     0.000625,
			Damping:     0.99,
			StartOffset: 1 / 1.1,
			MaxAnchors:  256,
		},
		Colors: BounceColors{
			Board:  "rgb(219 219 219 / 10%)",
			Parent: "red",
			Ball:   "blue",
			Lines:  "white",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "breakout":
		return defaultBreakoutYAML
	case "pingpong":
		return defaultPingPongYAML
	case "bounce":
		return defaultBounceYAML
	default:
		return nil
	}
}

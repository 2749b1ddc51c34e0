package core

// RuntimeConfig describes the host surface a game is mounted on.
type RuntimeConfig struct {
	ScreenW  int   // Host width in cells
	ScreenH  int   // Host height in cells
	TickRate int   // Host frame rate (animation callbacks per second)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Status   string
}

package snake

import "github.com/vovakirdan/director-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Ticks    uint64
	Status   string
	Score    int
	Speed    float64
	SnakeLen int
	Head     core.Vec
	Heading  core.Vec
	Food     core.Vec
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:    g.Ticks(),
		Status:   g.Status().String(),
		Score:    g.Score(),
		Speed:    g.Speed(),
		SnakeLen: len(g.snake.Body),
		Head:     g.snake.Head(),
		Heading:  g.heading,
		Food:     g.food.Pos,
	}
}

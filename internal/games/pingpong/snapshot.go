package pingpong

import "github.com/vovakirdan/director-arcade/internal/core"

// Snapshot captures the match state for determinism testing.
type Snapshot struct {
	Ticks   uint64
	Status  string
	Speed   float64
	Ball    core.Vec
	BallSpd core.Vec
	P1Y     float64
	P2Y     float64
	P1Score int
	P2Score int
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:   g.Ticks(),
		Status:  g.Status().String(),
		Speed:   g.Speed(),
		Ball:    g.ball.Pos,
		BallSpd: g.ball.Spd,
		P1Y:     g.p1.Pos.Y,
		P2Y:     g.p2.Pos.Y,
		P1Score: g.p1Score,
		P2Score: g.p2Score,
	}
}

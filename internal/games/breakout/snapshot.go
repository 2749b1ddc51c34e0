package breakout

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Ticks           uint64
	Status          string
	Score           int
	Speed           float64
	PaddleX         float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	BricksRemaining int
	BrickData       []bool // Hit flag per brick
	Won             bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]bool, len(g.bricks.Body))
	for i, b := range g.bricks.Body {
		data[i] = b.Hit
	}
	return Snapshot{
		Ticks:           g.Ticks(),
		Status:          g.Status().String(),
		Score:           g.Score(),
		Speed:           g.Speed(),
		PaddleX:         g.paddle.Pos.X,
		BallX:           g.ball.Pos.X,
		BallY:           g.ball.Pos.Y,
		BallVX:          g.ball.Spd.X,
		BallVY:          g.ball.Spd.Y,
		BricksRemaining: g.bricks.Alive(),
		BrickData:       data,
		Won:             g.won,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed*1000)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX+1)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY+1)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX+1)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY+1)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, hit := range snap.BrickData {
		h *= 31
		if hit {
			h++
		}
	}
	if snap.Won {
		h++
	}
	return h
}

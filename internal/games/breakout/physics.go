package breakout

import "github.com/vovakirdan/director-arcade/internal/core"

// DetectCollision bounces the ball off walls, the paddle and bricks.
// All checks compare exact cell coordinates. Bounces repeat until the
// cell the ball moves into next holds no live brick, so a ball squeezed
// between two bricks breaks both in one tick.
func (g *Game) DetectCollision() {
	for {
		g.bounceWalls()
		if !g.hitBrick() {
			break
		}
		g.SetScore(g.Score() + 1)
		if speed, changed := g.ramp.Next(g.Score(), g.Speed()); changed {
			g.SetSpeed(speed)
		}
		if g.bricks.Alive() == 0 {
			g.won = true
			g.GameOver()
			return
		}
	}

	if g.ball.Pos.Y >= g.maxY {
		g.GameOver()
	}
}

// bounceWalls turns the ball away from the side walls, the ceiling and
// the paddle.
func (g *Game) bounceWalls() {
	b := g.ball
	c := g.cell()
	switch {
	case b.Pos.X <= g.minX:
		b.Spd.X = 1
	case b.Pos.X >= g.maxX:
		b.Spd.X = -1
	}
	if b.Pos.Y <= 0 {
		b.Spd.Y = 1
	}

	p := g.paddle
	if b.Pos.Y == g.maxY-c && b.Pos.X >= p.Pos.X && b.Pos.X < p.Pos.X+p.Dim.W {
		b.Spd.Y = -1
	}
}

// hitBrick flips the ball off the first brick face it touches and marks
// that brick destroyed. Faces are tried below, above, left, right; a ball
// heading diagonally into a corner bounces straight back.
func (g *Game) hitBrick() bool {
	b := g.ball
	c := g.cell()
	bw := g.bricks.Dim.W
	x, y := b.Pos.X, b.Pos.Y
	next := b.Pos.Add(b.Spd.Scale(c))
	nextCell := core.NewRect(core.Round(next.X), core.Round(next.Y), core.Round(c), core.Round(c))

	for i := range g.bricks.Body {
		br := &g.bricks.Body[i]
		if br.Hit {
			continue
		}
		inX := x >= br.X && x < br.X+bw
		inY := y == br.Y
		rect := core.NewRect(core.Round(br.X), core.Round(br.Y), core.Round(bw), core.Round(c))

		switch {
		case b.Spd.Y < 0 && inX && y == br.Y+c:
			b.Spd.Y = 1
		case b.Spd.Y > 0 && inX && y == br.Y-c:
			b.Spd.Y = -1
		case b.Spd.X > 0 && inY && x == br.X-c:
			b.Spd.X = -1
		case b.Spd.X < 0 && inY && x == br.X+bw:
			b.Spd.X = 1
		case rect.Intersects(nextCell):
			b.Spd = b.Spd.Scale(-1)
		default:
			continue
		}
		br.Hit = true
		return true
	}
	return false
}

// Package pingpong implements two-player Ping-Pong on a director loop.
package pingpong

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "pingpong"

// Game implements Ping-Pong for two players on one keyboard.
type Game struct {
	*director.Director

	cfg        config.PingPongConfig
	startSpeed float64

	board      *director.Asset
	scoreboard *director.Asset
	ball       *director.Asset
	p1, p2     *director.Asset

	p1Score, p2Score int
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Ping-Pong",
		Description: "Two paddles, one keyboard (W/S vs arrows)",
	}, func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadPingPong(env.ConfigPath, env.Logger)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(env.Difficulty)
		if !ok {
			return nil, fmt.Errorf("pingpong: unknown difficulty %q", env.Difficulty)
		}
		config.ApplyPingPongPreset(&cfg, preset)
		return New(cfg, env.Runtime, env.Overrides, env.Logger), nil
	})
}

// New creates a Ping-Pong game.
func New(cfg config.PingPongConfig, rt core.RuntimeConfig, overrides map[string]string, logger *log.Logger) *Game {
	g := &Game{cfg: cfg}
	g.Director = director.New(g, rt, cfg.Board, director.WithLogger(logger))
	g.Apply(overrides)
	g.startSpeed = g.Speed()

	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())
	paddleH := float64(max(cfg.Paddles.Cells, 1)) * c
	offset := float64(max(cfg.Paddles.Offset, 1)) * c
	paddleY := g.snap(h/2 - paddleH/2)

	g.scoreboard = g.CreateAsset(director.Asset{
		Color: cfg.Colors.Scores,
		OnDraw: func(a *director.Asset) {
			g.WriteText(strconv.Itoa(g.p1Score), w/4, h/2, a.Color, 124)
			g.WriteText(strconv.Itoa(g.p2Score), w*3/4, h/2, a.Color, 124)
		},
	})
	g.board = g.CreateAsset(director.Asset{
		Dim:    director.Dim{W: w, H: h},
		Color:  cfg.Colors.Lines,
		OnDraw: g.drawBoard,
	})
	g.ball = g.CreateAsset(director.Asset{
		Pos:   core.Vec{X: g.snap(w / 2), Y: g.snap(h / 2)},
		Spd:   core.Vec{X: 1, Y: -1},
		Dim:   director.Dim{R: c / 2},
		Color: cfg.Colors.Ball,
		OnDraw: func(a *director.Asset) {
			g.FillCircle(a.Pos.X, a.Pos.Y, a.Dim.R, a.Color)
		},
		OnUpdate: func(a *director.Asset) {
			a.Pos = a.Pos.Add(a.Spd.Scale(c))
		},
	})
	drawPaddle := func(a *director.Asset) {
		g.FillRect(a.Pos.X, a.Pos.Y, a.Dim.W, a.Dim.H, a.Color)
	}
	g.p1 = g.CreateAsset(director.Asset{
		Pos:    core.Vec{X: offset, Y: paddleY},
		Dim:    director.Dim{W: c, H: paddleH},
		Color:  cfg.Colors.P1,
		OnDraw: drawPaddle,
	})
	g.p2 = g.CreateAsset(director.Asset{
		Pos:    core.Vec{X: w - c - offset, Y: paddleY},
		Dim:    director.Dim{W: c, H: paddleH},
		Color:  cfg.Colors.P2,
		OnDraw: drawPaddle,
	})

	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ping-Pong"
}

func (g *Game) cell() float64 {
	return float64(g.CellSize())
}

func (g *Game) snap(v float64) float64 {
	c := g.cell()
	return math.Floor(v/c) * c
}

// Scores returns both players' points.
func (g *Game) Scores() (p1, p2 int) {
	return g.p1Score, g.p2Score
}

// DrawFrame draws scores, court, ball and paddles.
func (g *Game) DrawFrame() {
	g.scoreboard.Draw()
	g.board.Draw()
	g.ball.Draw()
	g.p1.Draw()
	g.p2.Draw()
}

// DetectCollision bounces the ball and awards points on side walls.
func (g *Game) DetectCollision() {
	b := g.ball
	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())

	switch {
	case b.Pos.Y <= c && b.Spd.Y < 0:
		b.Spd.Y = 1
	case b.Pos.Y >= h-2*c && b.Spd.Y > 0:
		b.Spd.Y = -1
	}

	switch {
	case b.Pos.X <= c && b.Spd.X < 0:
		g.point(&g.p2Score)
		b.Spd.X = 1
	case b.Pos.X >= w-2*c && b.Spd.X > 0:
		g.point(&g.p1Score)
		b.Spd.X = -1
	}

	switch {
	case b.Spd.X < 0 && b.Pos.X == g.p1.Pos.X+c && g.facing(g.p1):
		b.Spd.X = 1
	case b.Spd.X > 0 && b.Pos.X == g.p2.Pos.X-c && g.facing(g.p2):
		b.Spd.X = -1
	}

	if win := g.cfg.Gameplay.WinScore; win > 0 && (g.p1Score >= win || g.p2Score >= win) {
		g.GameOver()
	}
}

// facing reports whether the ball is level with the paddle.
func (g *Game) facing(p *director.Asset) bool {
	y := g.ball.Pos.Y
	return y >= p.Pos.Y && y < p.Pos.Y+p.Dim.H
}

// point scores for one player and speeds the rally up.
func (g *Game) point(score *int) {
	*score++
	g.SetScore(max(g.p1Score, g.p2Score))
	g.SetSpeed(config.Scale(g.Speed(), g.cfg.Gameplay.SpeedFactor, g.cfg.Gameplay.MaxSpeed))
	g.Logger().Debug("point", "p1", g.p1Score, "p2", g.p2Score, "speed", g.Speed())
}

// UpdateGame moves the ball.
func (g *Game) UpdateGame() {
	g.ball.Update()
}

// GameOver stops the loop once a player reaches the winning score.
func (g *Game) GameOver() {
	g.SetStatus(director.StatusGameOver)
	g.Halt()
	g.Repaint()
	g.Logger().Info("match over", "p1", g.p1Score, "p2", g.p2Score)
}

// GameReset puts the ball and paddles back and clears the scores.
func (g *Game) GameReset() {
	g.ball.Reset()
	g.p1.Reset()
	g.p2.Reset()
	g.p1Score, g.p2Score = 0, 0
	g.SetScore(0)
	g.SetSpeed(g.startSpeed)
	g.Resume()
}

// GameKeyPress serves, restarts and moves paddles while a rally is on.
func (g *Game) GameKeyPress(key core.Key) {
	status := g.Status()
	if key == core.KeySpace {
		switch status {
		case director.StatusReady:
			g.SetStatus(director.StatusStarted)
		case director.StatusGameOver:
			g.GameReset()
		}
		return
	}
	if status != director.StatusStarted {
		return
	}

	switch key {
	case core.KeyW:
		g.move(g.p1, -1)
	case core.KeyS:
		g.move(g.p1, 1)
	case core.KeyArrowUp:
		g.move(g.p2, -1)
	case core.KeyArrowDown:
		g.move(g.p2, 1)
	}
}

// move shifts a paddle by one step, keeping it inside the court.
func (g *Game) move(p *director.Asset, dir float64) {
	c := g.cell()
	step := float64(max(g.cfg.Paddles.Step, 1)) * c
	top := c
	bottom := float64(g.Height()) - c - p.Dim.H
	p.Pos.Y = core.ClampF(p.Pos.Y+dir*step, top, bottom)
}

func (g *Game) drawBoard(a *director.Asset) {
	c := g.cell()
	w, h := a.Dim.W, a.Dim.H
	g.StrokeRect(0, 0, w, h, "white")
	g.DrawLine(g.snap(w/2), c, g.snap(w/2), h-2*c, a.Color)
	g.DrawLine(c, c, c, h-2*c, a.Color)
	g.DrawLine(w-2*c, c, w-2*c, h-2*c, a.Color)
	g.StrokeCircle(w/2, h/2, math.Max(h/5, c), a.Color)

	switch g.Status() {
	case director.StatusReady:
		g.WriteText("PRESS SPACE TO SERVE", w/2, h-3*c, "white", 18)
	case director.StatusGameOver:
		winner := 1
		if g.p2Score > g.p1Score {
			winner = 2
		}
		g.WriteText(fmt.Sprintf("PLAYER %d WINS", winner), w/2, h/4, "white", 52)
		g.WriteText("PRESS SPACE TO RESET", w/2, h-3*c, "white", 18)
	}
}

// Package breakout implements a Breakout-style brick breaker on a director loop.
package breakout

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "breakout"

// Game implements Breakout.
type Game struct {
	*director.Director

	cfg        config.BreakoutConfig
	ramp       *config.SpeedRamp
	startSpeed float64

	board      *director.Asset
	bricks     *director.Asset
	paddle     *director.Asset
	ball       *director.Asset
	statusCard *director.Asset

	// Board limits for the ball, in canvas units
	minX, maxX float64
	maxY       float64 // Paddle row; the ball is lost when it gets here

	won bool
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Breakout",
		Description: "Clear the brick wall with a bouncing ball",
	}, func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadBreakout(env.ConfigPath, env.Logger)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(env.Difficulty)
		if !ok {
			return nil, fmt.Errorf("breakout: unknown difficulty %q", env.Difficulty)
		}
		config.ApplyBreakoutPreset(&cfg, preset)
		return New(cfg, env.Runtime, env.Overrides, env.Logger), nil
	})
}

// New creates a Breakout game. The brick wall is laid out once for the
// canvas size at creation.
func New(cfg config.BreakoutConfig, rt core.RuntimeConfig, overrides map[string]string, logger *log.Logger) *Game {
	g := &Game{cfg: cfg, ramp: config.NewSpeedRamp(cfg.Ramp)}
	g.Director = director.New(g, rt, cfg.Board, director.WithLogger(logger))
	g.Apply(overrides)
	g.startSpeed = g.Speed()

	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())
	g.minX = 0
	g.maxX = w - c
	g.maxY = h - 2*c

	brickW := float64(max(cfg.Bricks.Width, 1)) * c
	paddleW := float64(max(cfg.Paddle.Width, 1)) * c

	g.board = g.CreateAsset(director.Asset{
		Dim:   director.Dim{W: w, H: h},
		Color: cfg.Colors.Board,
		OnDraw: func(a *director.Asset) {
			g.FillRect(0, 0, a.Dim.W, a.Dim.H, a.Color)
			g.FillRect(0, g.maxY+c, a.Dim.W, c, cfg.Colors.Wall) // gutter under the paddle
		},
	})
	g.bricks = g.CreateAsset(director.Asset{
		Dim:  director.Dim{W: brickW, H: c},
		Body: director.Trail(Layout(cfg.Bricks.Total, w, brickW, c, g.maxY-4*c)...),
		OnDraw: func(a *director.Asset) {
			for _, b := range a.Body {
				if !b.Hit {
					g.FillRect(b.X, b.Y, a.Dim.W, a.Dim.H, g.brickColor(b.Y))
				}
			}
		},
	})
	g.paddle = g.CreateAsset(director.Asset{
		Pos:   core.Vec{X: g.snap(w/2 - paddleW/2), Y: g.maxY},
		Dim:   director.Dim{W: paddleW, H: c},
		Color: cfg.Colors.Paddle,
		OnDraw: func(a *director.Asset) {
			g.FillRect(a.Pos.X, a.Pos.Y, a.Dim.W, a.Dim.H, a.Color)
		},
	})
	g.ball = g.CreateAsset(director.Asset{
		Pos:   core.Vec{X: g.snap(w/2 - c/2), Y: g.maxY - c},
		Dim:   director.Dim{R: c},
		Color: cfg.Colors.Ball,
		OnDraw: func(a *director.Asset) {
			g.FillRect(a.Pos.X, a.Pos.Y, a.Dim.R, a.Dim.R, a.Color)
		},
		OnUpdate: func(a *director.Asset) {
			a.Pos = a.Pos.Add(a.Spd.Scale(c))
		},
	})
	g.statusCard = g.CreateAsset(director.Asset{
		Color:  cfg.Colors.Text,
		OnDraw: g.drawStatus,
	})

	g.Logger().Debug("breakout laid out", "bricks", len(g.bricks.Body), "width", w, "height", h)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breakout"
}

func (g *Game) cell() float64 {
	return float64(g.CellSize())
}

// snap rounds v down to the cell grid.
func (g *Game) snap(v float64) float64 {
	c := g.cell()
	return math.Floor(v/c) * c
}

func (g *Game) brickColor(y float64) string {
	colors := g.cfg.Bricks.Colors
	if len(colors) == 0 {
		return "blue"
	}
	return colors[brickRow(y, g.cell())%len(colors)]
}

// DrawFrame draws the board, bricks, paddle, ball and status card.
func (g *Game) DrawFrame() {
	g.board.Draw()
	g.bricks.Draw()
	g.paddle.Draw()
	g.ball.Draw()
	g.statusCard.Draw()
}

// UpdateGame moves the ball.
func (g *Game) UpdateGame() {
	g.ball.Update()
}

// GameOver stops the loop and shows the result card.
func (g *Game) GameOver() {
	g.SetStatus(director.StatusGameOver)
	g.Halt()
	g.Repaint()
	g.Logger().Info("breakout over", "score", g.Score(), "won", g.won)
}

// GameReset rebuilds the wall and puts the ball back on the paddle.
func (g *Game) GameReset() {
	g.paddle.Reset()
	g.ball.Reset()
	g.bricks.Reset()
	g.won = false
	g.SetScore(0)
	g.SetSpeed(g.startSpeed)
	g.Resume()
}

// GameKeyPress launches, restarts and moves the paddle.
func (g *Game) GameKeyPress(key core.Key) {
	status := g.Status()
	switch {
	case key == core.KeySpace && status == director.StatusReady:
		g.SetStatus(director.StatusStarted)
		g.ball.Spd = core.Vec{X: -1, Y: -1}
		return
	case key == core.KeySpace && status == director.StatusGameOver:
		g.GameReset()
		return
	case status == director.StatusGameOver:
		return
	}

	step := float64(max(g.cfg.Paddle.Step, 1)) * g.cell()
	p := g.paddle
	x := p.Pos.X
	switch {
	case key.IsLeft() && x > g.minX:
		x = math.Max(x-step, g.minX)
	case key.IsRight() && x < float64(g.Width())-p.Dim.W:
		x = math.Min(x+step, float64(g.Width())-p.Dim.W)
	default:
		return
	}

	dx := x - p.Pos.X
	p.Pos.X = x
	if g.ball.Spd == (core.Vec{}) {
		g.ball.Pos.X += dx
	}
}

func (g *Game) drawStatus(a *director.Asset) {
	w, h := float64(g.Width()), float64(g.Height())
	switch g.Status() {
	case director.StatusReady:
		g.WriteText("START GAME", w/2, h/2, a.Color, 52)
		g.WriteText("HIT SPACE TO START", w/2, h/2+2, a.Color, 18)
	case director.StatusStarted:
		g.WriteText(fmt.Sprintf("SCORE %d", g.Score()), w/2, g.maxY+g.cell(), "white", 18)
	case director.StatusGameOver:
		title := "GAME OVER"
		if g.won {
			title = "YOU WIN"
		}
		g.WriteText(title, w/2, h/2, a.Color, 52)
		g.WriteText(fmt.Sprintf("SCORE %d", g.Score()), w/2, h/2+2, a.Color, 26)
		g.WriteText("HIT SPACE TO RESTART", w/2, h/2+4, a.Color, 18)
	}
}

// Package bounce implements a gravity simulator: a ball bouncing inside a
// large circle, leaving a line to every point where it hit the rim.
//
// Physics run in row units. The cell aspect only stretches x when drawing,
// so the parent circle is round on screen and distances stay isotropic.
package bounce

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
const ID = "bounce"

// Game implements the bounce simulator.
type Game struct {
	*director.Director

	cfg    config.BounceConfig
	aspect float64
	radius float64 // Parent circle radius
	center core.Vec
	accel  float64 // Gravity per tick

	board   *director.Asset
	parent  *director.Asset
	anchors *director.Asset
	ball    *director.Asset
	hint    *director.Asset
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Bounce Simulator",
		Description: "Watch a ball bounce inside a circle",
	}, func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadBounce(env.ConfigPath, env.Logger)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(env.Difficulty)
		if !ok {
			return nil, fmt.Errorf("bounce: unknown difficulty %q", env.Difficulty)
		}
		config.ApplyBouncePreset(&cfg, preset)
		return New(cfg, env.Runtime, env.Overrides, env.Logger), nil
	})
}

// New creates a simulator sized to the canvas at creation.
func New(cfg config.BounceConfig, rt core.RuntimeConfig, overrides map[string]string, logger *log.Logger) *Game {
	g := &Game{cfg: cfg}
	g.Director = director.New(g, rt, cfg.Board, director.WithLogger(logger))
	g.Apply(overrides)

	ph := cfg.Physics
	g.aspect = g.Aspect()
	w, h := float64(g.Width()), float64(g.Height())
	g.center = core.Vec{X: w / g.aspect / 2, Y: h / 2}
	g.radius = h * ph.ParentRatio
	g.accel = g.radius * ph.Gravity

	g.board = g.CreateAsset(director.Asset{
		Dim:   director.Dim{W: w, H: h},
		Color: cfg.Colors.Board,
		OnDraw: func(a *director.Asset) {
			g.FillRect(0, 0, a.Dim.W, a.Dim.H, a.Color)
		},
	})
	g.parent = g.CreateAsset(director.Asset{
		Pos:   g.center,
		Dim:   director.Dim{R: g.radius},
		Color: cfg.Colors.Parent,
		OnDraw: func(a *director.Asset) {
			g.StrokeCircle(a.Pos.X*g.aspect, a.Pos.Y, a.Dim.R, a.Color)
		},
	})
	g.anchors = g.CreateAsset(director.Asset{
		Color: cfg.Colors.Lines,
		OnDraw: func(a *director.Asset) {
			b := g.ball.Pos
			for _, p := range a.Body {
				g.DrawLine(p.X*g.aspect, p.Y, b.X*g.aspect, b.Y, a.Color)
			}
		},
		OnReset: func(a *director.Asset) {
			a.Body = nil
		},
	})

	speed := g.radius * ph.LaunchSpeed
	g.ball = g.CreateAsset(director.Asset{
		Pos:   core.Vec{X: g.center.X, Y: g.center.Y - g.radius*ph.StartOffset},
		Spd:   core.Vec{X: speed, Y: speed},
		Dim:   director.Dim{R: g.radius * ph.BallRadius},
		Color: cfg.Colors.Ball,
		OnDraw: func(a *director.Asset) {
			g.FillCircle(a.Pos.X*g.aspect, a.Pos.Y, a.Dim.R, a.Color)
		},
		OnUpdate: func(a *director.Asset) {
			a.Pos = a.Pos.Add(a.Spd)
			a.Spd.Y = a.Spd.Y*ph.Damping + g.accel
		},
	})
	g.hint = g.CreateAsset(director.Asset{
		OnDraw: func(*director.Asset) {
			text := "SPACE TO DROP  R TO RESET"
			if g.Status() == director.StatusStarted {
				text = fmt.Sprintf("BOUNCES %d  R TO RESET", len(g.anchors.Body))
			}
			g.WriteText(text, w/2, h-1, "white", 14)
		},
	})

	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bounce Simulator"
}

// DrawFrame draws the board, circle, anchor lines and ball.
func (g *Game) DrawFrame() {
	g.board.Draw()
	g.parent.Draw()
	g.anchors.Draw()
	g.ball.Draw()
	g.hint.Draw()
}

// DetectCollision reflects the ball off the inside of the parent circle
// and records where it hit.
func (g *Game) DetectCollision() {
	b := g.ball
	dist := math.Round(b.Pos.Dist(g.center))
	if dist < g.radius-b.Dim.R {
		return
	}
	if b.Pos.Y != g.center.Y {
		b.Spd.Y = -b.Spd.Y
	}
	if b.Pos.X != g.center.X {
		b.Spd.X = -b.Spd.X
	}

	g.anchors.Body = append(g.anchors.Body, director.Segment{Vec: b.Pos})
	if limit := g.cfg.Physics.MaxAnchors; limit > 0 && len(g.anchors.Body) > limit {
		g.anchors.Body = g.anchors.Body[len(g.anchors.Body)-limit:]
	}
	g.SetScore(g.Score() + 1)
}

// UpdateGame applies velocity, damping and gravity.
func (g *Game) UpdateGame() {
	g.ball.Update()
}

// GameOver halts the simulation. Nothing in the simulator ends it on its own.
func (g *Game) GameOver() {
	g.SetStatus(director.StatusGameOver)
	g.Halt()
	g.Repaint()
}

// GameReset clears the anchors and drops the ball from the start again.
func (g *Game) GameReset() {
	g.ball.Reset()
	g.anchors.Reset()
	g.SetScore(0)
	g.Resume()
}

// GameKeyPress starts on Space and resets on R.
func (g *Game) GameKeyPress(key core.Key) {
	switch key {
	case core.KeySpace:
		if g.Status() == director.StatusReady {
			g.SetStatus(director.StatusStarted)
		}
	case core.KeyR:
		g.GameReset()
	}
}

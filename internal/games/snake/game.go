// Package snake implements the classic Snake game on a director loop.
package snake

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "snake"

// Starting trail, in cells, head first.
var startTrail = []core.Vec{{X: 3, Y: 3}, {X: 2, Y: 3}}

// foodAttempts bounds random food placement before falling back to a scan.
const foodAttempts = 32

// Game implements the Snake game.
type Game struct {
	*director.Director

	cfg        config.SnakeConfig
	ramp       *config.SpeedRamp
	startSpeed float64

	walls      *director.Asset
	scoreboard *director.Asset
	food       *director.Asset
	snake      *director.Asset

	heading core.Vec // Direction of the last applied move
	grow    int      // Segments still to add
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Snake",
		Description: "Eat, grow, and keep off the walls",
	}, func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadSnake(env.ConfigPath, env.Logger)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(env.Difficulty)
		if !ok {
			return nil, fmt.Errorf("snake: unknown difficulty %q", env.Difficulty)
		}
		config.ApplySnakePreset(&cfg, preset)
		return New(cfg, env.Runtime, env.Overrides, env.Logger), nil
	})
}

// New creates a Snake game for a host of rt.ScreenW x rt.ScreenH cells.
// Overrides are applied before any asset is laid out.
func New(cfg config.SnakeConfig, rt core.RuntimeConfig, overrides map[string]string, logger *log.Logger) *Game {
	g := &Game{cfg: cfg, ramp: config.NewSpeedRamp(cfg.Ramp)}
	g.Director = director.New(g, rt, cfg.Board, director.WithLogger(logger))
	g.Apply(overrides)
	g.startSpeed = g.Speed()

	g.walls = g.CreateAsset(director.Asset{
		Color:  cfg.Colors.Wall,
		OnDraw: g.drawWalls,
	})
	g.scoreboard = g.CreateAsset(director.Asset{
		Color:  cfg.Colors.Text,
		OnDraw: g.drawScoreboard,
	})
	g.food = g.CreateAsset(director.Asset{
		Color: cfg.Colors.Food,
		OnDraw: func(a *director.Asset) {
			if g.Status() != director.StatusStarted {
				return
			}
			c := g.cell()
			g.FillRect(a.Pos.X, a.Pos.Y, c, c, a.Color)
		},
		OnUpdate: func(a *director.Asset) {
			a.Pos = g.freeCell()
		},
	})

	trail := make([]core.Vec, len(startTrail))
	for i, p := range startTrail {
		trail[i] = p.Scale(g.cell())
	}
	g.snake = g.CreateAsset(director.Asset{
		Spd:   core.Vec{X: 1},
		Color: cfg.Colors.Snake,
		Body:  director.Trail(trail...),
		OnDraw: func(a *director.Asset) {
			if g.Status() != director.StatusStarted {
				return
			}
			c := g.cell()
			for _, s := range a.Body {
				g.FillRect(s.X, s.Y, c, c, a.Color)
			}
		},
		OnUpdate: g.moveSnake,
	})
	g.heading = g.snake.Spd
	g.food.Update()

	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

func (g *Game) cell() float64 {
	return float64(g.CellSize())
}

// DrawFrame draws walls, food, snake and the scoreboard.
func (g *Game) DrawFrame() {
	g.walls.Draw()
	g.food.Draw()
	g.snake.Draw()
	g.scoreboard.Draw()
}

// DetectCollision ends the game on wall or self hits and handles eating.
func (g *Game) DetectCollision() {
	head := g.snake.Head()
	if g.hitsWall(head) || g.hitsSelf(head) {
		g.GameOver()
		return
	}

	if head != g.food.Pos {
		return
	}
	g.grow++
	g.SetScore(g.Score() + 1)
	g.food.Update()
	if speed, changed := g.ramp.Next(g.Score(), g.Speed()); changed {
		g.SetSpeed(speed)
	}
}

// UpdateGame moves the snake one cell.
func (g *Game) UpdateGame() {
	g.snake.Update()
}

// GameOver stops the loop and shows the final score.
func (g *Game) GameOver() {
	g.SetStatus(director.StatusGameOver)
	g.Halt()
	g.Repaint()
	g.Logger().Info("snake over", "score", g.Score(), "length", len(g.snake.Body))
}

// GameReset restores the starting snake, score and speed.
func (g *Game) GameReset() {
	g.snake.Reset()
	g.heading = g.snake.Spd
	g.grow = 0
	g.SetScore(0)
	g.SetSpeed(g.startSpeed)
	g.food.Update()
	g.Resume()
}

// GameKeyPress starts, restarts and steers.
func (g *Game) GameKeyPress(key core.Key) {
	if key.IsStart() {
		switch g.Status() {
		case director.StatusGameOver:
			g.GameReset()
		case director.StatusReady:
			g.SetStatus(director.StatusStarted)
		}
		return
	}

	switch {
	case key.IsUp():
		g.turn(core.Vec{Y: -1})
	case key.IsDown():
		g.turn(core.Vec{Y: 1})
	case key.IsLeft():
		g.turn(core.Vec{X: -1})
	case key.IsRight():
		g.turn(core.Vec{X: 1})
	}
}

// turn changes direction only perpendicular to the last applied move,
// so two quick presses within one tick cannot reverse the snake.
func (g *Game) turn(dir core.Vec) {
	if g.Status() == director.StatusGameOver {
		return
	}
	if (dir.X != 0 && g.heading.X == 0) || (dir.Y != 0 && g.heading.Y == 0) {
		g.snake.Spd = dir
	}
}

func (g *Game) moveSnake(a *director.Asset) {
	head := a.Head().Add(a.Spd.Scale(g.cell()))
	g.heading = a.Spd
	a.Body = slices.Insert(a.Body, 0, director.Segment{Vec: head})
	if g.grow > 0 {
		g.grow--
		return
	}
	a.Body = a.Body[:len(a.Body)-1]
}

// Walls are one cell thick, below a one-cell scoreboard.
func (g *Game) hitsWall(p core.Vec) bool {
	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())
	return p.X < c || p.X+c > w-c || p.Y < 2*c || p.Y+c > h-c
}

func (g *Game) hitsSelf(p core.Vec) bool {
	for _, s := range g.snake.Body[1:] {
		if s.Vec == p {
			return true
		}
	}
	return false
}

func (g *Game) onSnake(p core.Vec) bool {
	if g.snake == nil {
		return false
	}
	for _, s := range g.snake.Body {
		if s.Vec == p {
			return true
		}
	}
	return false
}

func (g *Game) foodBounds() director.Bounds {
	c := g.cell()
	return director.Bounds{
		MinX: 2 * c,
		MaxX: float64(g.Width()) - 2*c,
		MinY: 2 * c,
		MaxY: float64(g.Height()) - 2*c,
	}
}

// freeCell picks a random food position that is not on the snake.
func (g *Game) freeCell() core.Vec {
	b := g.foodBounds()
	for range foodAttempts {
		if p := g.RandomCoord(b); !g.onSnake(p) {
			return p
		}
	}
	c := g.cell()
	for y := b.MinY; y < b.MaxY-c; y += c {
		for x := b.MinX; x < b.MaxX-c; x += c {
			if p := (core.Vec{X: x, Y: y}); !g.onSnake(p) {
				return p
			}
		}
	}
	return core.Vec{X: b.MinX, Y: b.MinY}
}

func (g *Game) drawWalls(a *director.Asset) {
	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())
	g.FillRect(0, c, w, c, a.Color)     // top
	g.FillRect(0, c, c, h-c, a.Color)   // left
	g.FillRect(0, h-c, w, c, a.Color)   // bottom
	g.FillRect(w-c, c, c, h-c, a.Color) // right
}

func (g *Game) drawScoreboard(a *director.Asset) {
	c := g.cell()
	w, h := float64(g.Width()), float64(g.Height())
	g.FillRect(0, 0, w, c, "black")

	switch g.Status() {
	case director.StatusReady:
		g.WriteText("PRESS SPACE TO START", w/2, h/2, a.Color, 36)
	case director.StatusStarted:
		text := fmt.Sprintf("SCORE: %d", g.Score())
		g.WriteText(text, float64(len(text)/2+1), 0, a.Color, 18)
	case director.StatusGameOver:
		g.WriteText("GAME OVER", w/2, h/2-2, a.Color, 52)
		g.WriteText(fmt.Sprintf("SCORE: %d", g.Score()), w/2, h/2, a.Color, 26)
		g.WriteText("PRESS SPACE TO RESTART", w/2, h/2+2, a.Color, 26)
	}
}

package breakout

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
)

type harness struct {
	*Game
	now time.Time
}

// newHarness builds a 40x20 board with two rows of six bricks.
func newHarness(t *testing.T) *harness {
	t.Helper()
	return newBoard(t, 40, 20, 12)
}

func newBoard(t *testing.T, w, h, bricks int) *harness {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Board = director.Settings{Fixed: true, Width: w, Height: h, Speed: 20}
	cfg.Bricks.Total = bricks
	return &harness{
		Game: New(cfg, core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1}, nil, nil),
		now:  time.Unix(500, 0),
	}
}

func (h *harness) tick(n int) {
	for range n {
		h.now = h.now.Add(time.Second)
		h.Frame(h.now)
	}
}

// place puts the ball at (x, y) with velocity (vx, vy) and starts the game.
func (h *harness) place(x, y, vx, vy float64) {
	h.SetStatus(director.StatusStarted)
	h.ball.Pos = core.Vec{X: x, Y: y}
	h.ball.Spd = core.Vec{X: vx, Y: vy}
}

func TestLayout(t *testing.T) {
	got := Layout(8, 40, 5, 1, 100)
	want := []core.Vec{
		{X: 1, Y: 1}, {X: 7, Y: 1}, {X: 13, Y: 1}, {X: 19, Y: 1}, {X: 25, Y: 1}, {X: 31, Y: 1},
		{X: 1, Y: 3}, {X: 7, Y: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("brick %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLayoutLimits(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		boardW float64
		maxY   float64
		want   int
	}{
		{"too narrow", 5, 5, 100, 0},
		{"rows stop at maxY", 50, 40, 4, 12},
		{"zero", 0, 40, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Layout(tt.total, tt.boardW, 5, 1, tt.maxY)); got != tt.want {
				t.Errorf("bricks = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInitialPlacement(t *testing.T) {
	h := newHarness(t)
	if h.paddle.Pos != (core.Vec{X: 15, Y: 18}) {
		t.Errorf("paddle = %+v, want (15,18)", h.paddle.Pos)
	}
	if h.ball.Pos != (core.Vec{X: 19, Y: 17}) {
		t.Errorf("ball = %+v, want (19,17)", h.ball.Pos)
	}
	if len(h.bricks.Body) != 12 {
		t.Errorf("bricks = %d, want 12", len(h.bricks.Body))
	}
}

func TestLaunch(t *testing.T) {
	h := newHarness(t)
	h.tick(3)
	if h.ball.Pos != (core.Vec{X: 19, Y: 17}) {
		t.Fatalf("ball moved before launch: %+v", h.ball.Pos)
	}

	h.KeyPress(core.KeyEnter) // not a launch key here
	if h.Status() != director.StatusReady {
		t.Fatalf("Enter started the game")
	}

	h.KeyPress(core.KeySpace)
	if h.Status() != director.StatusStarted {
		t.Fatalf("status = %v, want started", h.Status())
	}
	if h.ball.Spd != (core.Vec{X: -1, Y: -1}) {
		t.Errorf("launch velocity = %+v, want (-1,-1)", h.ball.Spd)
	}
	h.tick(1)
	if h.ball.Pos != (core.Vec{X: 18, Y: 16}) {
		t.Errorf("ball = %+v after one tick, want (18,16)", h.ball.Pos)
	}
}

func TestPaddleMovement(t *testing.T) {
	h := newHarness(t)

	h.KeyPress(core.KeyArrowLeft)
	if h.paddle.Pos.X != 13 || h.ball.Pos.X != 17 {
		t.Errorf("after left: paddle %v ball %v, want 13 and 17", h.paddle.Pos.X, h.ball.Pos.X)
	}

	for range 20 {
		h.KeyPress(core.KeyA)
	}
	if h.paddle.Pos.X != 0 {
		t.Errorf("paddle x = %v, want clamped at 0", h.paddle.Pos.X)
	}

	for range 30 {
		h.KeyPress(core.KeyD)
	}
	if h.paddle.Pos.X != 30 {
		t.Errorf("paddle x = %v, want clamped at 30", h.paddle.Pos.X)
	}

	// Once launched the ball no longer follows.
	h.KeyPress(core.KeySpace)
	ballX := h.ball.Pos.X
	h.KeyPress(core.KeyArrowLeft)
	if h.ball.Pos.X != ballX {
		t.Error("ball followed the paddle after launch")
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		wantVX float64
		wantVY float64
	}{
		{"left wall", 0, 12, -1, -1, 1, -1},
		{"right wall", 39, 12, 1, 1, -1, 1},
		{"top wall", 0, 0, -1, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.place(tt.x, tt.y, tt.vx, tt.vy)
			h.DetectCollision()
			if h.ball.Spd != (core.Vec{X: tt.wantVX, Y: tt.wantVY}) {
				t.Errorf("spd = %+v, want (%v,%v)", h.ball.Spd, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	h := newHarness(t)
	h.place(17, 17, 1, 1)
	h.DetectCollision()
	if h.ball.Spd.Y != -1 {
		t.Errorf("vy = %v, want -1 off the paddle", h.ball.Spd.Y)
	}
}

func TestBrickHits(t *testing.T) {
	// Row one bricks span x 1..5, 7..11, ... 31..35 at y 1; row two repeats at y 3.
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		want   core.Vec
		hits   []int
	}{
		{"from below", 3, 4, 1, -1, core.Vec{X: 1, Y: 1}, []int{6}},
		{"from right", 36, 3, -1, 1, core.Vec{X: 1, Y: 1}, []int{11}},
		{"corner", 36, 2, -1, -1, core.Vec{X: 1, Y: 1}, []int{5}},
		{"between rows", 4, 2, 1, -1, core.Vec{X: 1, Y: -1}, []int{0, 6}},
		{"between columns", 6, 1, 1, 1, core.Vec{X: 1, Y: 1}, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.place(tt.x, tt.y, tt.vx, tt.vy)
			h.DetectCollision()

			if h.ball.Spd != tt.want {
				t.Errorf("spd = %+v, want %+v", h.ball.Spd, tt.want)
			}
			for _, i := range tt.hits {
				if !h.bricks.Body[i].Hit {
					t.Errorf("brick %d not marked hit", i)
				}
			}
			if h.Score() != len(tt.hits) {
				t.Errorf("score = %d, want %d", h.Score(), len(tt.hits))
			}
			if got, want := h.bricks.Alive(), 12-len(tt.hits); got != want {
				t.Errorf("alive = %d, want %d", got, want)
			}
		})
	}
}

func TestBallBetweenRowsNeverEntersBrick(t *testing.T) {
	h := newHarness(t)
	h.place(4, 2, 1, -1)
	h.tick(1)

	if h.ball.Pos != (core.Vec{X: 5, Y: 1}) {
		t.Errorf("pos = %+v, want {5 1}", h.ball.Pos)
	}
	if i, ok := h.liveBrickAt(h.ball.Pos); ok {
		t.Errorf("ball inside live brick %d at %+v", i, h.ball.Pos)
	}
}

// liveBrickAt returns the index of the live brick covering p.
func (h *harness) liveBrickAt(p core.Vec) (int, bool) {
	c := h.cell()
	for i, b := range h.bricks.Body {
		if !b.Hit && p.X >= b.X && p.X < b.X+h.bricks.Dim.W && p.Y >= b.Y && p.Y < b.Y+c {
			return i, true
		}
	}
	return 0, false
}

func TestBallNeverInsideLiveBrick(t *testing.T) {
	boards := []struct{ w, h int }{{40, 20}, {41, 21}, {63, 25}, {80, 30}}
	for _, bd := range boards {
		t.Run(fmt.Sprintf("%dx%d", bd.w, bd.h), func(t *testing.T) {
			h := newBoard(t, bd.w, bd.h, 50)
			h.KeyPress(core.KeySpace)
			maxPaddle := float64(h.Width()) - h.paddle.Dim.W
			for i := range 3000 {
				h.paddle.Pos.X = math.Max(0, math.Min(h.ball.Pos.X-h.paddle.Dim.W/2, maxPaddle))
				h.tick(1)
				if n, ok := h.liveBrickAt(h.ball.Pos); ok {
					t.Fatalf("tick %d: ball %+v inside live brick %d", i, h.ball.Pos, n)
				}
				if h.Status() == director.StatusGameOver {
					break
				}
			}
		})
	}
}

func TestSpeedRampEveryTenBricks(t *testing.T) {
	h := newHarness(t)
	h.SetScore(9)
	h.place(3, 4, 1, -1)
	h.DetectCollision()

	if h.Score() != 10 {
		t.Fatalf("score = %d, want 10", h.Score())
	}
	if got := h.Speed(); got != 24 {
		t.Errorf("speed = %v, want 24", got)
	}
}

func TestBallLost(t *testing.T) {
	h := newHarness(t)
	h.paddle.Pos.X = 25
	h.place(5, 16, 1, 1)

	h.tick(3)
	if h.Status() != director.StatusGameOver {
		t.Fatalf("status = %v, want game over", h.Status())
	}
	if h.Running() {
		t.Error("loop still running")
	}
	if h.won {
		t.Error("lost game marked as won")
	}
	if !strings.Contains(h.Canvas().String(), "G A M E   O V E R") {
		t.Errorf("game over card missing:\n%s", h.Canvas().String())
	}
}

func TestClearingWallWins(t *testing.T) {
	h := newHarness(t)
	for i := 1; i < len(h.bricks.Body); i++ {
		h.bricks.Body[i].Hit = true
	}
	h.place(3, 2, 1, -1)
	h.tick(1)

	if h.Status() != director.StatusGameOver || !h.won {
		t.Fatalf("status = %v won = %v, want won game over", h.Status(), h.won)
	}
	if !strings.Contains(h.Canvas().String(), "Y O U   W I N") {
		t.Errorf("win card missing:\n%s", h.Canvas().String())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	h := newHarness(t)
	h.KeyPress(core.KeyArrowRight)
	h.KeyPress(core.KeySpace)
	h.tick(4)
	h.bricks.Body[3].Hit = true
	h.SetSpeed(50)
	h.GameOver()

	h.KeyPress(core.KeyArrowLeft) // ignored while over
	h.KeyPress(core.KeySpace)

	if h.Status() != director.StatusReady || !h.Running() {
		t.Fatalf("status = %v running = %v", h.Status(), h.Running())
	}
	if h.paddle.Pos != (core.Vec{X: 15, Y: 18}) {
		t.Errorf("paddle = %+v", h.paddle.Pos)
	}
	if h.ball.Pos != (core.Vec{X: 19, Y: 17}) || h.ball.Spd != (core.Vec{}) {
		t.Errorf("ball = %+v spd %+v", h.ball.Pos, h.ball.Spd)
	}
	if h.bricks.Alive() != 12 {
		t.Errorf("alive = %d, want 12", h.bricks.Alive())
	}
	if h.Score() != 0 || h.Speed() != 20 {
		t.Errorf("score %d speed %v, want 0 and 20", h.Score(), h.Speed())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t)
		for i := range 120 {
			switch {
			case i == 2:
				h.KeyPress(core.KeySpace)
			case i > 2 && i%5 < 2:
				h.KeyPress(core.KeyArrowRight)
			case i > 2:
				h.KeyPress(core.KeyArrowLeft)
			}
			h.tick(1)
		}
		return h.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("determinism failed: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.BricksRemaining != s2.BricksRemaining {
		t.Errorf("snapshots differ: %+v vs %+v", s1, s2)
	}
}

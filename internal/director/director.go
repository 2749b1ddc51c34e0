// Package director implements the shared game loop every arcade game builds on.
//
// A Director owns the canvas, decides which host frames become game ticks,
// stores the per-game configuration and forwards key presses. Games embed a
// *Director and supply the Hooks it calls back into:
//
//	frame accepted:  clear canvas -> DrawFrame
//	status STARTED:  DetectCollision -> UpdateGame
//
// Everything runs on the caller's goroutine; the Director is not safe for
// concurrent use.
package director

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Hooks are the callbacks a game implements.
type Hooks interface {
	// DrawFrame draws every asset back to front.
	DrawFrame()
	// DetectCollision inspects asset positions and mutates velocities,
	// scores and status. Only called while the game is started.
	DetectCollision()
	// UpdateGame advances every moving asset by one tick.
	UpdateGame()
	// GameOver halts the loop and renders the end-state overlay.
	GameOver()
	// GameReset restores the initial asset state and resumes the loop.
	GameReset()
	// GameKeyPress maps a key to movement, start and reset.
	GameKeyPress(key core.Key)
}

// Director is the shared loop/render owner embedded by every game.
type Director struct {
	hooks    Hooks
	settings Settings
	canvas   *core.Screen
	rng      *rand.Rand
	logger   *log.Logger

	hostW, hostH int

	// Live configuration
	bgColor  string
	speed    float64
	cellSize int
	score    int
	status   Status

	// Scheduler state
	lastPaint time.Time
	painted   bool
	halted    bool
	ticks     uint64
}

// Option configures a Director.
type Option func(*Director)

// WithLogger routes the Director's debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.logger = l
		}
	}
}

// New builds a Director for hooks on a host of rt.ScreenW x rt.ScreenH cells.
func New(hooks Hooks, rt core.RuntimeConfig, s Settings, opts ...Option) *Director {
	bad := s.malformed()
	s = s.withDefaults()
	w, h := s.CanvasSize(rt.ScreenW, rt.ScreenH)

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d := &Director{
		hooks:    hooks,
		settings: s,
		canvas:   core.NewScreen(w, h),
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.New(io.Discard),
		hostW:    rt.ScreenW,
		hostH:    rt.ScreenH,
		bgColor:  s.BgColor,
		speed:    s.Speed,
		cellSize: s.CellSize,
		status:   StatusReady,
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, b := range bad {
		d.logger.Warn("invalid setting, using default", "key", b.key, "value", b.value)
	}

	d.logger.Debug("director created", "width", w, "height", h, "speed", d.speed, "fixed", s.Fixed)
	return d
}

// Apply sets several config values from their string form, skipping and
// logging the ones that fail. Malformed overrides never stop a game.
func (d *Director) Apply(overrides map[string]string) {
	for k, v := range overrides {
		if err := d.SetString(ConfigKey(k), v); err != nil {
			d.logger.Warn("ignoring config override", "key", k, "value", v, "error", err)
		}
	}
}

// Resize reacts to the host surface changing size. Fixed canvases keep
// their dimensions.
func (d *Director) Resize(hostW, hostH int) {
	d.hostW, d.hostH = hostW, hostH
	if d.settings.Fixed {
		return
	}
	w, h := d.settings.CanvasSize(hostW, hostH)
	d.canvas.Resize(w, h)
}

// KeyPress forwards a key code to the game.
func (d *Director) KeyPress(key core.Key) {
	if key == core.KeyNone {
		return
	}
	d.hooks.GameKeyPress(key)
}

// Frame is the host animation callback. It only acts when at least
// 1/speed seconds have passed since the last accepted frame.
func (d *Director) Frame(now time.Time) {
	if d.halted {
		return
	}
	if d.painted && now.Sub(d.lastPaint).Seconds() < 1/d.speed {
		return
	}
	d.lastPaint = now
	d.painted = true
	d.ticks++

	d.Repaint()
	if d.status != StatusStarted {
		return
	}
	d.hooks.DetectCollision()
	if d.status == StatusStarted && !d.halted {
		d.hooks.UpdateGame()
	}
}

// Repaint clears the canvas and draws the current frame immediately.
func (d *Director) Repaint() {
	d.ClearBoard()
	d.hooks.DrawFrame()
}

// Halt stops accepting frames. Used by game-over routines.
func (d *Director) Halt() {
	if d.halted {
		return
	}
	d.halted = true
	d.logger.Debug("loop halted", "ticks", d.ticks, "score", d.score)
}

// Resume puts the game back in READY and accepts frames again.
func (d *Director) Resume() {
	d.halted = false
	d.painted = false
	d.SetStatus(StatusReady)
	d.logger.Debug("loop resumed")
}

// Running reports whether the host should keep scheduling frames.
func (d *Director) Running() bool {
	return !d.halted
}

// Ticks returns how many frames have been accepted.
func (d *Director) Ticks() uint64 {
	return d.ticks
}

// Logger returns the Director's logger.
func (d *Director) Logger() *log.Logger {
	return d.logger
}

// Canvas returns the drawing surface.
func (d *Director) Canvas() *core.Screen {
	return d.canvas
}

// Render copies the canvas into dst, centered on the host surface.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	ox := max((dst.Width()-d.canvas.Width())/2, 0)
	oy := max((dst.Height()-d.canvas.Height())/2, 0)
	dst.Blit(d.canvas, ox, oy)
}

// State summarizes the game for the platform.
func (d *Director) State() core.GameState {
	return core.GameState{
		Score:    d.score,
		GameOver: d.status == StatusGameOver,
		Status:   d.status.String(),
	}
}

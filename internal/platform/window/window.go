// Package window hosts director games in a desktop window with ebiten.
// The game canvas is the same cell grid the terminal shows; each cell
// becomes an 8x16 pixel block.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
	"github.com/vovakirdan/director-arcade/internal/storage"
)

// Cell size in pixels. The 1:2 ratio matches the default circle aspect.
const (
	CellW = 8
	CellH = 16
)

// Options configures the window and the hosted game.
type Options struct {
	Store      *storage.Store
	Runtime    core.RuntimeConfig // ScreenW/ScreenH are the initial size in cells
	ConfigPath string
	Difficulty string
	Overrides  map[string]string
	Logger     *log.Logger
}

var keyTable = []struct {
	ebiten ebiten.Key
	key    core.Key
}{
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyArrowUp, core.KeyArrowUp},
	{ebiten.KeyArrowDown, core.KeyArrowDown},
	{ebiten.KeyArrowLeft, core.KeyArrowLeft},
	{ebiten.KeyArrowRight, core.KeyArrowRight},
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyR, core.KeyR},
}

// host adapts a registry.Game to ebiten.Game.
type host struct {
	game     registry.Game
	screen   *core.Screen
	recorder *storage.Recorder
	logger   *log.Logger
	cols     int
	rows     int
	pixel    *ebiten.Image
	glyphs   map[rune]*ebiten.Image
}

func newHost(game registry.Game, opts Options, logger *log.Logger) *host {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &host{
		game:     game,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty),
		logger:   logger,
		cols:     opts.Runtime.ScreenW,
		rows:     opts.Runtime.ScreenH,
		pixel:    pixel,
		glyphs:   make(map[rune]*ebiten.Image),
	}
}

// Update runs once per tick: keys first, then one host frame.
func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) &&
		h.game.State().Status != director.StatusStarted.String() {
		return ebiten.Termination
	}

	for _, k := range keyTable {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			h.game.KeyPress(k.key)
		}
	}
	h.game.Frame(time.Now())

	saved, err := h.recorder.Observe(h.game.State())
	if err != nil {
		h.logger.Warn("could not save score", "game", h.game.ID(), "error", err)
	} else if saved {
		h.logger.Info("score saved", "game", h.game.ID(), "score", h.game.State().Score)
	}
	return nil
}

// Draw paints every cell: background first, then its glyph.
func (h *host) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)
	h.game.Render(h.screen)

	for y := range h.screen.Height() {
		for x := range h.screen.Width() {
			c := h.screen.Cell(x, y)
			px, py := float64(x*CellW), float64(y*CellH)

			bg := c.BG
			if bg.IsSet() {
				bg = bg.Over(core.ColorNone)
				h.fillRect(dst, px, py, CellW, CellH, bg)
			}
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			fg := c.FG
			if !fg.IsSet() {
				fg = core.ColorWhite
			}
			fg = fg.Over(bg)
			h.drawGlyph(dst, c.Rune, px, py, fg, c.Bold)
		}
	}
}

// Layout maps the window to whole cells and tells the game when the
// grid changes.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/CellW, 1)
	rows := max(outsideHeight/CellH, 1)
	if cols != h.cols || rows != h.rows {
		h.cols, h.rows = cols, rows
		h.screen.Resize(cols, rows)
		h.game.Resize(cols, rows)
	}
	return outsideWidth, outsideHeight
}

func (h *host) fillRect(dst *ebiten.Image, x, y, w, hgt float64, c core.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	dst.DrawImage(h.pixel, op)
}

// drawGlyph tints a cached white glyph. The debug font only covers ASCII,
// so other runes (ball dots, bullets) become a centered square.
func (h *host) drawGlyph(dst *ebiten.Image, r rune, x, y float64, c core.Color, bold bool) {
	if r > 0x7e {
		h.fillRect(dst, x+2, y+5, CellW-4, CellH-10, c)
		return
	}
	img, ok := h.glyphs[r]
	if !ok {
		img = ebiten.NewImage(CellW, CellH)
		ebitenutil.DebugPrintAt(img, string(r), 1, 0)
		h.glyphs[r] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	dst.DrawImage(img, op)
	if bold {
		op.GeoM.Translate(1, 0)
		dst.DrawImage(img, op)
	}
}

func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Run opens a window and hosts the game until it is closed, Q is pressed,
// or Escape is pressed while no round is running.
func Run(gameID string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = 100, 40
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	game, err := registry.Create(gameID, registry.Env{
		Runtime:    opts.Runtime,
		ConfigPath: opts.ConfigPath,
		Difficulty: opts.Difficulty,
		Overrides:  opts.Overrides,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(opts.Runtime.ScreenW*CellW, opts.Runtime.ScreenH*CellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Runtime.TickRate)

	logger.Info("window opened", "game", gameID, "cols", opts.Runtime.ScreenW, "rows", opts.Runtime.ScreenH)
	if err := ebiten.RunGame(newHost(game, opts, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

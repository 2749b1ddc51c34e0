package director

import (
	"strings"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Font sizes at which text gets emphasized on a cell canvas.
const (
	BoldFontSize   = 36
	SpacedFontSize = 48
)

// DefaultTextColor is used when WriteText gets an empty color.
const DefaultTextColor = "white"

// color resolves a color string, falling back to white for malformed input.
func (d *Director) color(s string) core.Color {
	c, err := core.ParseColor(s)
	if err != nil {
		d.logger.Warn("bad color, using white", "color", s, "error", err)
		return core.ColorWhite
	}
	return c
}

func cellRect(x, y, w, h float64) core.Rect {
	return core.NewRect(core.Round(x), core.Round(y), core.Round(w), core.Round(h))
}

// FillRect draws a filled rectangle.
func (d *Director) FillRect(x, y, w, h float64, color string) {
	d.canvas.FillRect(cellRect(x, y, w, h), d.color(color))
}

// StrokeRect draws a rectangle outline.
func (d *Director) StrokeRect(x, y, w, h float64, color string) {
	d.canvas.StrokeRect(cellRect(x, y, w, h), d.color(color))
}

// FillCircle draws a filled circle of radius r rows centered at (x, y).
// The horizontal radius is stretched by the cell aspect so circles look
// round. Circles under one cell render as a ball glyph.
func (d *Director) FillCircle(x, y, r float64, color string) {
	c := d.color(color)
	if r < 1 {
		d.canvas.SetRune(core.Round(x), core.Round(y), '●', c)
		return
	}
	d.canvas.FillEllipse(x, y, r*d.settings.Aspect, r, c)
}

// StrokeCircle draws a circle outline.
func (d *Director) StrokeCircle(x, y, r float64, color string) {
	d.canvas.StrokeEllipse(x, y, r*d.settings.Aspect, r, '•', d.color(color))
}

// DrawLine draws a line between two points.
func (d *Director) DrawLine(x0, y0, x1, y1 float64, color string) {
	d.canvas.DrawLine(core.Round(x0), core.Round(y0), core.Round(x1), core.Round(y1), d.color(color))
}

// WriteText draws text horizontally centered on x. Large font sizes are
// rendered bold, and the largest ones letter-spaced.
func (d *Director) WriteText(text string, x, y float64, color string, fontSize int) {
	if color == "" {
		color = DefaultTextColor
	}
	if fontSize >= SpacedFontSize {
		text = letterSpace(text)
	}
	n := len([]rune(text))
	left := core.Round(x) - n/2
	d.canvas.DrawText(left, core.Round(y), text, d.color(color), fontSize >= BoldFontSize)
}

// ClearBoard fills the whole canvas with the configured background color.
func (d *Director) ClearBoard() {
	d.canvas.Clear()
	d.canvas.Fill(d.color(d.bgColor))
}

func letterSpace(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

package core

import (
	"math"
	"strings"
)

// Cell is one character position of the canvas.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer games draw into. The platform turns it into
// terminal output or window pixels; games never talk to the host directly.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving overlapping content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < min(oldH, height); y++ {
		copy(s.cells[y][:min(oldW, width)], old[y])
	}
}

// Clear resets every cell to a blank with no colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// inBounds reports whether (x, y) is a valid cell.
func (s *Screen) inBounds(x, y int) bool {
	return s.Bounds().Contains(x, y)
}

// Cell returns the cell at (x, y); out-of-bounds reads return a blank.
func (s *Screen) Cell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.Cell(x, y).Rune
}

// SetCell replaces a cell. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// SetRune places a glyph in the given foreground color, keeping the background.
func (s *Screen) SetRune(x, y int, r rune, fg Color) {
	if !s.inBounds(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = fg
	c.Bold = false
}

// Paint fills a cell's background, compositing translucent colors over
// whatever background is already there. Any glyph is covered.
func (s *Screen) Paint(x, y int, bg Color) {
	if !s.inBounds(x, y) || !bg.IsSet() {
		return
	}
	c := &s.cells[y][x]
	c.BG = bg.Over(c.BG)
	c.Rune = ' '
	c.FG = ColorNone
	c.Bold = false
}

// Fill paints the whole screen background.
func (s *Screen) Fill(bg Color) {
	s.FillRect(s.Bounds(), bg)
}

// DrawText writes a string starting at (x, y) without touching backgrounds.
// Characters beyond the screen edge are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color, bold bool) {
	i := 0
	for _, r := range text {
		px := x + i
		i++
		if !s.inBounds(px, y) {
			continue
		}
		c := &s.cells[y][px]
		c.Rune = r
		c.FG = fg
		c.Bold = bold
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color, bold bool) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg, bold)
}

// FillRect paints a rectangular area, clipped to the screen.
func (s *Screen) FillRect(r Rect, bg Color) {
	x0, x1 := Clamp(r.X, 0, s.width), Clamp(r.Right(), 0, s.width)
	y0, y1 := Clamp(r.Y, 0, s.height), Clamp(r.Bottom(), 0, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Paint(x, y, bg)
		}
	}
}

// StrokeRect outlines a rectangle with box-drawing characters.
func (s *Screen) StrokeRect(r Rect, fg Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetRune(x, r.Y, '─', fg)
		s.SetRune(x, bottom, '─', fg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetRune(r.X, y, '│', fg)
		s.SetRune(right, y, '│', fg)
	}
	s.SetRune(r.X, r.Y, '┌', fg)
	s.SetRune(right, r.Y, '┐', fg)
	s.SetRune(r.X, bottom, '└', fg)
	s.SetRune(right, bottom, '┘', fg)
}

// FillEllipse paints every cell whose center lies inside the ellipse.
// Ellipses smaller than a cell still paint their center cell.
func (s *Screen) FillEllipse(cx, cy, rx, ry float64, bg Color) {
	if rx <= 0 || ry <= 0 {
		s.Paint(Round(cx), Round(cy), bg)
		return
	}
	painted := false
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.Paint(x, y, bg)
				painted = true
			}
		}
	}
	if !painted {
		s.Paint(Round(cx), Round(cy), bg)
	}
}

// StrokeEllipse plots the outline of an ellipse with the given glyph.
func (s *Screen) StrokeEllipse(cx, cy, rx, ry float64, glyph rune, fg Color) {
	steps := int(math.Ceil(2*math.Pi*math.Max(rx, ry))) * 2
	if steps < 8 {
		steps = 8
	}
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.SetRune(Round(cx+rx*math.Cos(a)), Round(cy+ry*math.Sin(a)), glyph, fg)
	}
}

// DrawLine plots a line between two cells using Bresenham's algorithm.
// Axis-aligned lines use box-drawing glyphs, others use a dot.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, fg Color) {
	glyph := '·'
	switch {
	case x0 == x1 && y0 != y1:
		glyph = '│'
	case y0 == y1 && x0 != x1:
		glyph = '─'
	}

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.SetRune(x0, y0, glyph, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Blit copies src onto s with its top-left corner at (ox, oy).
func (s *Screen) Blit(src *Screen, ox, oy int) {
	for y := range src.height {
		for x := range src.width {
			s.SetCell(ox+x, oy+y, src.cells[y][x])
		}
	}
}

// String converts the screen to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

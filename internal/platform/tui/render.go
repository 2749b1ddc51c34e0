package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// cellStyle is the part of a cell that decides its terminal attributes.
type cellStyle struct {
	fg   core.Color
	bg   core.Color
	bold bool
}

func styleOf(c core.Cell) cellStyle {
	bg := c.BG
	if bg.IsSet() && bg.A < 1 {
		bg = bg.Over(core.ColorNone)
	}
	fg := c.FG
	if fg.IsSet() && fg.A < 1 {
		fg = fg.Over(bg)
	}
	return cellStyle{fg: fg, bg: bg, bold: c.Bold}
}

func (cs cellStyle) lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	if cs.fg.IsSet() {
		st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if cs.bg.IsSet() {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	if cs.bold {
		st = st.Bold(true)
	}
	return st
}

// renderScreen converts a Screen buffer to a styled string for r, or the
// default renderer when r is nil. Adjacent cells with the same attributes
// share one style to keep the number of escape sequences down. Translucent
// colors are composited before they reach the terminal.
func renderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := styleOf(s.Cell(x, y))
			run.Reset()
			for x < s.Width() {
				c := s.Cell(x, y)
				if styleOf(c) != start {
					break
				}
				run.WriteRune(c.Rune)
				x++
			}

			st, ok := styles[start]
			if !ok {
				st = start.lipgloss(r)
				styles[start] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}

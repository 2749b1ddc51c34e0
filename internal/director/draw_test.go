package director

import (
	"testing"

	"github.com/vovakirdan/director-arcade/internal/core"
)

func TestClearBoardUsesBackground(t *testing.T) {
	r := newRecorder(t, Settings{BgColor: "#102030", Fixed: true, Width: 4, Height: 3})
	r.ClearBoard()

	want := core.RGB(0x10, 0x20, 0x30)
	if got := r.Canvas().Cell(2, 1).BG; got != want {
		t.Errorf("background = %+v, want %+v", got, want)
	}
}

func TestFillRectFallsBackToWhite(t *testing.T) {
	r := newRecorder(t, Settings{Fixed: true, Width: 6, Height: 4})
	r.FillRect(1, 1, 2, 2, "definitely not a color")

	if got := r.Canvas().Cell(1, 1).BG; got != core.ColorWhite {
		t.Errorf("cell bg = %+v, want white", got)
	}
	if got := r.Canvas().Cell(3, 1).BG; got == core.ColorWhite {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestFillCircleSmallIsGlyph(t *testing.T) {
	r := newRecorder(t, Settings{Fixed: true, Width: 5, Height: 5})
	r.FillCircle(2, 2, 0.5, "red")

	c := r.Canvas().Cell(2, 2)
	if c.Rune != '●' || c.FG != core.ColorRed {
		t.Errorf("cell = %+v, want red ball glyph", c)
	}
}

func TestFillCircleAspect(t *testing.T) {
	r := newRecorder(t, Settings{Fixed: true, Width: 20, Height: 10})
	r.FillCircle(10, 5, 2, "white")

	canvas := r.Canvas()
	// Horizontal radius is doubled by the default aspect.
	if canvas.Cell(13, 5).BG != core.ColorWhite {
		t.Error("expected circle to reach 3 columns right of center")
	}
	if canvas.Cell(10, 8).BG == core.ColorWhite {
		t.Error("circle reached 3 rows below center")
	}
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		size     int
		wantRow  string
		wantBold bool
	}{
		{"plain", "HI", 16, "    HI    ", false},
		{"bold", "HI", 36, "    HI    ", true},
		{"spaced", "HI", 48, "    H I   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(t, Settings{Fixed: true, Width: 10, Height: 1})
			r.Canvas().Clear()
			r.WriteText(tt.text, 5, 0, "", tt.size)

			if got := r.Canvas().Row(0); got != tt.wantRow {
				t.Errorf("row = %q, want %q", got, tt.wantRow)
			}
			if got := r.Canvas().Cell(4, 0).Bold; got != tt.wantBold {
				t.Errorf("bold = %v, want %v", got, tt.wantBold)
			}
		})
	}
}

package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"red", RGB(255, 0, 0)},
		{"  Brown ", RGB(165, 42, 42)},
		{"#FF0000", RGB(255, 0, 0)},
		{"#0f0", RGB(0, 255, 0)},
		{"rgb(255 255 255 / 30%)", Color{R: 255, G: 255, B: 255, A: 0.3}},
		{"rgb(0 0 124 / 75%)", Color{R: 0, G: 0, B: 124, A: 0.75}},
		{"rgb(219, 219, 219)", RGB(219, 219, 219)},
		{"rgba(10, 20, 30, 0.5)", Color{R: 10, G: 20, B: 30, A: 0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tc.in, err)
			}
			if got.R != tc.expected.R || got.G != tc.expected.G || got.B != tc.expected.B {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.expected)
			}
			if diff := got.A - tc.expected.A; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ParseColor(%q) alpha = %v, expected %v", tc.in, got.A, tc.expected.A)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "rgb(1 2)", "rgb(a b c)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
	if got := ColorOr("bogus", ColorYellow); got != ColorYellow {
		t.Errorf("ColorOr should fall back, got %+v", got)
	}
}

func TestColorOver(t *testing.T) {
	if got := ColorRed.Over(ColorWhite); got != ColorRed {
		t.Errorf("opaque color should win, got %+v", got)
	}
	if got := ColorNone.Over(ColorWhite); got != ColorWhite {
		t.Errorf("unset color should keep dst, got %+v", got)
	}

	half := Color{R: 255, G: 255, B: 255, A: 0.5}
	got := half.Over(ColorNone)
	if got.R < 120 || got.R > 135 {
		t.Errorf("half white over nothing should blend with black, got %+v", got)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(165, 42, 42).Hex(); got != "#a52a2a" {
		t.Errorf("Hex() = %q, expected #a52a2a", got)
	}
}

package core

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with opacity.
// The zero value is "unset" and renders with the terminal's default color.
type Color struct {
	R, G, B uint8
	A       float64 // 0 = unset, 1 = opaque
}

// Common colors used by the games.
var (
	ColorNone   = Color{}
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorRed    = RGB(255, 0, 0)
	ColorYellow = RGB(255, 255, 0)
)

// namedColors covers the CSS keywords the game palettes use.
var namedColors = map[string]Color{
	"black":     ColorBlack,
	"white":     ColorWhite,
	"red":       ColorRed,
	"green":     RGB(0, 128, 0),
	"lime":      RGB(0, 255, 0),
	"blue":      RGB(0, 0, 255),
	"yellow":    ColorYellow,
	"orange":    RGB(255, 165, 0),
	"purple":    RGB(128, 0, 128),
	"magenta":   RGB(255, 0, 255),
	"cyan":      RGB(0, 255, 255),
	"brown":     RGB(165, 42, 42),
	"gray":      RGB(128, 128, 128),
	"grey":      RGB(128, 128, 128),
	"navy":      RGB(0, 0, 128),
	"teal":      RGB(0, 128, 128),
	"olive":     RGB(128, 128, 0),
	"maroon":    RGB(128, 0, 0),
	"silver":    RGB(192, 192, 192),
	"gold":      RGB(255, 215, 0),
	"pink":      RGB(255, 192, 203),
	"darkgreen": RGB(0, 100, 0),
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// IsSet reports whether the color carries any paint.
func (c Color) IsSet() bool {
	return c.A > 0
}

// Hex returns the color as #rrggbb, ignoring opacity.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Over composites c on top of dst and returns an opaque result.
// An unset dst is treated as black.
func (c Color) Over(dst Color) Color {
	if !c.IsSet() {
		return dst
	}
	if c.A >= 1 {
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	base := dst
	if !base.IsSet() {
		base = ColorBlack
	}
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	bottom := colorful.Color{R: float64(base.R) / 255, G: float64(base.G) / 255, B: float64(base.B) / 255}
	r, g, b := top.BlendRgb(bottom, 1-c.A).Clamped().RGB255()
	return RGB(r, g, b)
}

// ParseColor understands CSS keywords, #rgb / #rrggbb and the
// space-separated rgb() form with optional alpha, e.g. "rgb(255 0 0 / 50%)".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ColorNone, fmt.Errorf("core: empty color")
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return ColorNone, fmt.Errorf("core: bad hex color %q: %w", s, err)
		}
		r, g, b := hc.RGB255()
		return RGB(r, g, b), nil
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	return ColorNone, fmt.Errorf("core: unknown color %q", s)
}

// ColorOr parses s and returns fallback when it is malformed.
func ColorOr(s string, fallback Color) Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func parseRGBFunc(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return ColorNone, fmt.Errorf("core: bad rgb color %q", s)
	}
	body := s[open+1 : len(s)-1]

	alpha := 1.0
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		a, err := parseChannel(strings.TrimSpace(body[slash+1:]), 1)
		if err != nil {
			return ColorNone, fmt.Errorf("core: bad alpha in %q: %w", s, err)
		}
		alpha = a
		body = body[:slash]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 4 {
		a, err := parseChannel(fields[3], 1)
		if err != nil {
			return ColorNone, fmt.Errorf("core: bad alpha in %q: %w", s, err)
		}
		alpha = a
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return ColorNone, fmt.Errorf("core: rgb color %q needs three channels", s)
	}

	var ch [3]uint8
	for i, f := range fields {
		v, err := parseChannel(f, 255)
		if err != nil {
			return ColorNone, fmt.Errorf("core: bad channel in %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

// parseChannel reads "128", "50%" or "0.5" and clamps to [0, scale].
func parseChannel(f string, scale float64) (float64, error) {
	pct := strings.HasSuffix(f, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
	if err != nil {
		return 0, err
	}
	if pct {
		v = v / 100 * scale
	}
	return ClampF(v, 0, scale), nil
}

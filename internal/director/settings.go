package director

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Defaults applied when a setting is absent or malformed.
const (
	DefaultBgColor  = "#000000"
	DefaultSpeed    = 10.0
	DefaultCellSize = 1
	DefaultRatio    = 100.0
	DefaultAspect   = 2.0
)

var (
	// ErrUnknownKey is returned when a config key is not part of the enumeration.
	ErrUnknownKey = errors.New("director: unknown config key")
	// ErrInvalidValue is returned when a value has the wrong type or range.
	ErrInvalidValue = errors.New("director: invalid config value")
)

// ConfigKey names one entry of the Director's game configuration.
type ConfigKey string

const (
	KeyBgColor    ConfigKey = "bgColor"
	KeyGameSpeed  ConfigKey = "gameSpeed"
	KeyGameWidth  ConfigKey = "gameWidth"
	KeyGameHeight ConfigKey = "gameHeight"
	KeyGameScore  ConfigKey = "gameScore"
	KeyCellSize   ConfigKey = "cellSize"
	KeyGameStatus ConfigKey = "gameStatus"
)

// ConfigKeys lists every key in the enumeration.
func ConfigKeys() []ConfigKey {
	return []ConfigKey{KeyBgColor, KeyGameSpeed, KeyGameWidth, KeyGameHeight, KeyGameScore, KeyCellSize, KeyGameStatus}
}

// Settings is the initial game configuration a Director is built from.
// Canvas dimensions are either a percentage of the host surface or, when
// Fixed is set and Width/Height are positive, an exact cell size.
type Settings struct {
	BgColor     string  `yaml:"color"`
	WidthRatio  float64 `yaml:"width_ratio"`
	HeightRatio float64 `yaml:"height_ratio"`
	Fixed       bool    `yaml:"fixed"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	CellSize    int     `yaml:"cell_size"`
	Aspect      float64 `yaml:"aspect"` // Columns per row for round shapes
}

// withDefaults fills absent or out-of-range values.
func (s Settings) withDefaults() Settings {
	if _, err := core.ParseColor(s.BgColor); err != nil {
		s.BgColor = DefaultBgColor
	}
	if s.WidthRatio <= 0 || s.WidthRatio > 100 {
		s.WidthRatio = DefaultRatio
	}
	if s.HeightRatio <= 0 || s.HeightRatio > 100 {
		s.HeightRatio = DefaultRatio
	}
	if !validSpeed(s.Speed) {
		s.Speed = DefaultSpeed
	}
	if s.CellSize <= 0 {
		s.CellSize = DefaultCellSize
	}
	if s.Aspect <= 0 || math.IsNaN(s.Aspect) {
		s.Aspect = DefaultAspect
	}
	return s
}

type badSetting struct {
	key   string
	value any
}

// malformed lists the settings that were given but fall outside their
// range, in declaration order.
func (s Settings) malformed() []badSetting {
	d := s.withDefaults()
	var bad []badSetting
	if s.BgColor != "" && d.BgColor != s.BgColor {
		bad = append(bad, badSetting{"color", s.BgColor})
	}
	if s.WidthRatio != 0 && d.WidthRatio != s.WidthRatio {
		bad = append(bad, badSetting{"width_ratio", s.WidthRatio})
	}
	if s.HeightRatio != 0 && d.HeightRatio != s.HeightRatio {
		bad = append(bad, badSetting{"height_ratio", s.HeightRatio})
	}
	if s.Speed != 0 && d.Speed != s.Speed {
		bad = append(bad, badSetting{"speed", s.Speed})
	}
	if s.CellSize != 0 && d.CellSize != s.CellSize {
		bad = append(bad, badSetting{"cell_size", s.CellSize})
	}
	if s.Aspect != 0 && d.Aspect != s.Aspect {
		bad = append(bad, badSetting{"aspect", s.Aspect})
	}
	return bad
}

// CanvasSize computes the canvas dimensions for a host of hostW x hostH cells.
func (s Settings) CanvasSize(hostW, hostH int) (int, int) {
	s = s.withDefaults()
	if s.Fixed && s.Width > 0 && s.Height > 0 {
		return s.Width, s.Height
	}
	w := int(math.Floor(float64(hostW) * s.WidthRatio / 100))
	h := int(math.Floor(float64(hostH) * s.HeightRatio / 100))
	return max(w, 1), max(h, 1)
}

func validSpeed(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Get returns the current value for key. The dynamic type is string for
// bgColor, float64 for gameSpeed, int for dimensions/score/cellSize and
// Status for gameStatus.
func (d *Director) Get(key ConfigKey) (any, error) {
	switch key {
	case KeyBgColor:
		return d.bgColor, nil
	case KeyGameSpeed:
		return d.speed, nil
	case KeyGameWidth:
		return d.canvas.Width(), nil
	case KeyGameHeight:
		return d.canvas.Height(), nil
	case KeyGameScore:
		return d.score, nil
	case KeyCellSize:
		return d.cellSize, nil
	case KeyGameStatus:
		return d.status, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set updates the value for key. The value must have the type Get returns
// (ints are also accepted for gameSpeed).
func (d *Director) Set(key ConfigKey, value any) error {
	switch key {
	case KeyBgColor:
		s, ok := value.(string)
		if !ok {
			return invalid(key, value)
		}
		if _, err := core.ParseColor(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		d.bgColor = s
	case KeyGameSpeed:
		var v float64
		switch n := value.(type) {
		case float64:
			v = n
		case int:
			v = float64(n)
		default:
			return invalid(key, value)
		}
		if !validSpeed(v) {
			return invalid(key, value)
		}
		d.SetSpeed(v)
	case KeyGameWidth, KeyGameHeight:
		n, ok := value.(int)
		if !ok || n <= 0 {
			return invalid(key, value)
		}
		if key == KeyGameWidth {
			d.canvas.Resize(n, d.canvas.Height())
		} else {
			d.canvas.Resize(d.canvas.Width(), n)
		}
		// An explicit size pins the canvas; host resizes no longer apply.
		d.settings.Fixed = true
		d.settings.Width, d.settings.Height = d.canvas.Width(), d.canvas.Height()
	case KeyGameScore:
		n, ok := value.(int)
		if !ok {
			return invalid(key, value)
		}
		d.score = n
	case KeyCellSize:
		n, ok := value.(int)
		if !ok || n <= 0 {
			return invalid(key, value)
		}
		d.cellSize = n
	case KeyGameStatus:
		st, ok := value.(Status)
		if !ok {
			return invalid(key, value)
		}
		if _, known := parseStatus(string(st)); !known {
			return invalid(key, value)
		}
		d.SetStatus(st)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// SetString parses raw for key and applies it. Used for command-line overrides.
func (d *Director) SetString(key ConfigKey, raw string) error {
	switch key {
	case KeyBgColor:
		return d.Set(key, raw)
	case KeyGameSpeed:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
		}
		return d.Set(key, v)
	case KeyGameWidth, KeyGameHeight, KeyGameScore, KeyCellSize:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
		}
		return d.Set(key, n)
	case KeyGameStatus:
		st, ok := parseStatus(raw)
		if !ok {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
		}
		return d.Set(key, st)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func invalid(key ConfigKey, value any) error {
	return fmt.Errorf("%w: %s=%v (%T)", ErrInvalidValue, key, value, value)
}

// Speed returns the target number of accepted ticks per second.
func (d *Director) Speed() float64 {
	return d.speed
}

// SetSpeed changes the tick rate; the next frame check uses the new value.
// Non-positive values are ignored.
func (d *Director) SetSpeed(v float64) {
	if !validSpeed(v) || v == d.speed {
		return
	}
	d.logger.Debug("speed changed", "from", d.speed, "to", v)
	d.speed = v
}

// Status returns the current game status.
func (d *Director) Status() Status {
	return d.status
}

// SetStatus changes the game status.
func (d *Director) SetStatus(s Status) {
	if s == d.status {
		return
	}
	d.logger.Debug("status changed", "from", d.status.String(), "to", s.String())
	d.status = s
}

// Score returns the current score.
func (d *Director) Score() int {
	return d.score
}

// SetScore replaces the score.
func (d *Director) SetScore(n int) {
	d.score = n
}

// CellSize returns the grid step used for snapping and collisions.
func (d *Director) CellSize() int {
	return d.cellSize
}

// BgColor returns the board background color.
func (d *Director) BgColor() string {
	return d.bgColor
}

// Width returns the canvas width in cells.
func (d *Director) Width() int {
	return d.canvas.Width()
}

// Height returns the canvas height in cells.
func (d *Director) Height() int {
	return d.canvas.Height()
}

// Aspect returns how many columns make one row visually.
func (d *Director) Aspect() float64 {
	return d.settings.Aspect
}

package director

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/core"
)

func TestSettingsDefaults(t *testing.T) {
	r := newRecorder(t, Settings{BgColor: "not-a-color", Speed: -1, CellSize: 0})

	if r.BgColor() != DefaultBgColor {
		t.Errorf("BgColor = %q, want %q", r.BgColor(), DefaultBgColor)
	}
	if r.Speed() != DefaultSpeed {
		t.Errorf("Speed = %v, want %v", r.Speed(), DefaultSpeed)
	}
	if r.CellSize() != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", r.CellSize(), DefaultCellSize)
	}
	if r.Status() != StatusReady {
		t.Errorf("Status = %v, want ready", r.Status())
	}
}

func TestMalformedSettingsLogWarnings(t *testing.T) {
	var buf bytes.Buffer
	s := Settings{BgColor: "notacolor", Speed: -5, WidthRatio: 150}
	New(&recorder{}, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}, s, WithLogger(log.New(&buf)))

	out := buf.String()
	for _, key := range []string{"color", "speed", "width_ratio"} {
		if !strings.Contains(out, "key="+key) {
			t.Errorf("no warning for %s, log:\n%s", key, out)
		}
	}
	if strings.Count(out, "WARN") != 3 {
		t.Errorf("want 3 warnings, log:\n%s", out)
	}
}

func TestAbsentSettingsStayQuiet(t *testing.T) {
	var buf bytes.Buffer
	New(&recorder{}, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}, Settings{}, WithLogger(log.New(&buf)))
	if strings.Contains(buf.String(), "WARN") {
		t.Errorf("unexpected warning:\n%s", buf.String())
	}
}

func TestGetSet(t *testing.T) {
	r := newRecorder(t, Settings{})

	tests := []struct {
		key   ConfigKey
		value any
	}{
		{KeyBgColor, "#112233"},
		{KeyGameSpeed, 25.0},
		{KeyGameWidth, 12},
		{KeyGameHeight, 7},
		{KeyGameScore, 42},
		{KeyCellSize, 2},
		{KeyGameStatus, StatusStarted},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if err := r.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%s) error: %v", tt.key, err)
			}
			got, err := r.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%s) error: %v", tt.key, err)
			}
			if got != tt.value {
				t.Errorf("Get(%s) = %v, want %v", tt.key, got, tt.value)
			}
		})
	}
}

func TestSetInvalid(t *testing.T) {
	r := newRecorder(t, Settings{})

	tests := []struct {
		name  string
		key   ConfigKey
		value any
		want  error
	}{
		{"unknown key", ConfigKey("lives"), 3, ErrUnknownKey},
		{"speed zero", KeyGameSpeed, 0.0, ErrInvalidValue},
		{"speed wrong type", KeyGameSpeed, "fast", ErrInvalidValue},
		{"bad color", KeyBgColor, "#zz", ErrInvalidValue},
		{"negative cell", KeyCellSize, -1, ErrInvalidValue},
		{"unknown status", KeyGameStatus, Status("paused"), ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Set(tt.key, tt.value); !errors.Is(err, tt.want) {
				t.Errorf("Set error = %v, want %v", err, tt.want)
			}
		})
	}

	if r.Speed() != DefaultSpeed {
		t.Errorf("speed changed to %v by invalid sets", r.Speed())
	}
}

func TestSetString(t *testing.T) {
	r := newRecorder(t, Settings{})

	if err := r.SetString(KeyGameSpeed, "12.5"); err != nil {
		t.Fatal(err)
	}
	if r.Speed() != 12.5 {
		t.Errorf("speed = %v, want 12.5", r.Speed())
	}
	if err := r.SetString(KeyGameStatus, "started"); err != nil {
		t.Fatal(err)
	}
	if r.Status() != StatusStarted {
		t.Errorf("status = %v, want started", r.Status())
	}
	if err := r.SetString(KeyGameScore, "ten"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetString(score, ten) error = %v", err)
	}
}

func TestApplySkipsBadOverrides(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.Apply(map[string]string{
		"gameSpeed": "30",
		"bgColor":   "navy",
		"cellSize":  "zero",
		"bogus":     "1",
	})

	if r.Speed() != 30 {
		t.Errorf("speed = %v, want 30", r.Speed())
	}
	if r.BgColor() != "navy" {
		t.Errorf("bgColor = %q, want navy", r.BgColor())
	}
	if r.CellSize() != DefaultCellSize {
		t.Errorf("cellSize = %d, want default", r.CellSize())
	}
}

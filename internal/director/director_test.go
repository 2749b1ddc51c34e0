package director

import (
	"testing"
	"time"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// recorder is a minimal game that records hook calls.
type recorder struct {
	*Director
	calls []string

	onCollide func()
}

func newRecorder(t *testing.T, s Settings) *recorder {
	t.Helper()
	r := &recorder{}
	r.Director = New(r, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}, s)
	return r
}

func (r *recorder) DrawFrame() { r.calls = append(r.calls, "draw") }
func (r *recorder) DetectCollision() {
	r.calls = append(r.calls, "collide")
	if r.onCollide != nil {
		r.onCollide()
	}
}
func (r *recorder) UpdateGame() { r.calls = append(r.calls, "update") }
func (r *recorder) GameOver() {
	r.calls = append(r.calls, "over")
	r.SetStatus(StatusGameOver)
	r.Halt()
}
func (r *recorder) GameReset() {
	r.calls = append(r.calls, "reset")
	r.Resume()
}
func (r *recorder) GameKeyPress(key core.Key) {
	r.calls = append(r.calls, "key:"+string(key))
	if key == core.KeySpace && r.Status() == StatusReady {
		r.SetStatus(StatusStarted)
	}
}

func (r *recorder) take() []string {
	c := r.calls
	r.calls = nil
	return c
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFrameReadyOnlyDraws(t *testing.T) {
	r := newRecorder(t, Settings{})
	start := time.Unix(0, 0)

	r.Frame(start)
	if got := r.take(); !equal(got, []string{"draw"}) {
		t.Errorf("ready frame calls = %v, want [draw]", got)
	}
}

func TestFrameStartedOrder(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.KeyPress(core.KeySpace)
	r.take()

	r.Frame(time.Unix(0, 0))
	want := []string{"draw", "collide", "update"}
	if got := r.take(); !equal(got, want) {
		t.Errorf("started frame calls = %v, want %v", got, want)
	}
}

func TestFrameRateLimit(t *testing.T) {
	r := newRecorder(t, Settings{Speed: 10})
	start := time.Unix(100, 0)

	tests := []struct {
		offset time.Duration
		accept bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{99 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{250 * time.Millisecond, true},
	}

	for _, tt := range tests {
		before := r.Ticks()
		r.Frame(start.Add(tt.offset))
		accepted := r.Ticks() > before
		if accepted != tt.accept {
			t.Errorf("frame at +%v accepted = %v, want %v", tt.offset, accepted, tt.accept)
		}
	}
}

func TestSpeedChangeAffectsNextCheck(t *testing.T) {
	r := newRecorder(t, Settings{Speed: 10})
	start := time.Unix(0, 0)
	r.Frame(start)

	r.SetSpeed(20)
	r.Frame(start.Add(60 * time.Millisecond))
	if r.Ticks() != 2 {
		t.Errorf("ticks = %d, want 2 after speeding up", r.Ticks())
	}
}

func TestCollisionEndingGameSkipsUpdate(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.KeyPress(core.KeySpace)
	r.onCollide = r.GameOver
	r.take()

	r.Frame(time.Unix(0, 0))
	want := []string{"draw", "collide", "over"}
	if got := r.take(); !equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	if r.Running() {
		t.Error("director should be halted after game over")
	}

	r.Frame(time.Unix(10, 0))
	if got := r.take(); len(got) != 0 {
		t.Errorf("halted director ran hooks: %v", got)
	}
}

func TestResume(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.SetStatus(StatusGameOver)
	r.Halt()

	r.Resume()
	if !r.Running() {
		t.Error("Running() = false after Resume")
	}
	if r.Status() != StatusReady {
		t.Errorf("status = %v, want ready", r.Status())
	}

	// The first frame after resuming is always accepted.
	ticks := r.Ticks()
	r.Frame(time.Unix(0, 0))
	if r.Ticks() != ticks+1 {
		t.Error("first frame after resume was rejected")
	}
}

func TestKeyPressForwards(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.KeyPress(core.KeyArrowUp)
	r.KeyPress(core.KeyNone)

	if got := r.take(); !equal(got, []string{"key:ArrowUp"}) {
		t.Errorf("calls = %v", got)
	}
}

func TestCanvasSizing(t *testing.T) {
	tests := []struct {
		name  string
		s     Settings
		wantW int
		wantH int
	}{
		{"full host", Settings{}, 40, 20},
		{"ratio", Settings{WidthRatio: 50, HeightRatio: 75}, 20, 15},
		{"fixed", Settings{Fixed: true, Width: 30, Height: 12}, 30, 12},
		{"fixed without dims falls back to ratio", Settings{Fixed: true}, 40, 20},
		{"bad ratio", Settings{WidthRatio: -3, HeightRatio: 500}, 40, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(t, tt.s)
			if w, h := r.Canvas().Width(), r.Canvas().Height(); w != tt.wantW || h != tt.wantH {
				t.Errorf("canvas = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResize(t *testing.T) {
	r := newRecorder(t, Settings{WidthRatio: 50, HeightRatio: 50})
	r.Resize(100, 60)
	if w, h := r.Canvas().Width(), r.Canvas().Height(); w != 50 || h != 30 {
		t.Errorf("after resize canvas = %dx%d, want 50x30", w, h)
	}

	fixed := newRecorder(t, Settings{Fixed: true, Width: 10, Height: 5})
	fixed.Resize(100, 60)
	if w, h := fixed.Canvas().Width(), fixed.Canvas().Height(); w != 10 || h != 5 {
		t.Errorf("fixed canvas resized to %dx%d", w, h)
	}
}

func TestExplicitSizeSurvivesResize(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantW     int
		wantH     int
	}{
		{"width only", map[string]string{"gameWidth": "30"}, 30, 40},
		{"height only", map[string]string{"gameHeight": "15"}, 80, 15},
		{"both", map[string]string{"gameWidth": "30", "gameHeight": "15"}, 30, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(t, Settings{})
			r.Resize(80, 40)
			r.Apply(tt.overrides)
			r.Resize(120, 50)

			if w, h := r.Width(), r.Height(); w != tt.wantW || h != tt.wantH {
				t.Errorf("canvas = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderCenters(t *testing.T) {
	r := newRecorder(t, Settings{Fixed: true, Width: 4, Height: 2})
	r.Canvas().SetRune(0, 0, 'x', core.ColorWhite)

	dst := core.NewScreen(10, 6)
	r.Render(dst)
	if got := dst.Get(3, 2); got != 'x' {
		t.Errorf("dst(3,2) = %q, want 'x'", got)
	}
}

func TestState(t *testing.T) {
	r := newRecorder(t, Settings{})
	r.SetScore(4)
	r.SetStatus(StatusGameOver)

	st := r.State()
	if st.Score != 4 || !st.GameOver || st.Status != "game over" {
		t.Errorf("State() = %+v", st)
	}
}

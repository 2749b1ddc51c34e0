package tui

import (
	"io"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/registry"
)

var registerStub sync.Once

func withStubGame(t *testing.T) {
	t.Helper()
	registerStub.Do(func() {
		registry.Register(
			registry.GameInfo{ID: "stub", Title: "Stub", Description: "test game"},
			func(env registry.Env) (registry.Game, error) { return newStubGame(100), nil },
		)
	})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		in   string
		want core.Key
		quit bool
	}{
		{" ", core.KeySpace, false},
		{"enter", core.KeyEnter, false},
		{"up", core.KeyArrowUp, false},
		{"right", core.KeyArrowRight, false},
		{"w", core.KeyW, false},
		{"S", core.KeyS, false},
		{"r", core.KeyR, false},
		{"x", core.KeyNone, false},
		{"q", core.KeyNone, true},
		{"ctrl+c", core.KeyNone, true},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(keyMsg(tt.in))
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %q, %v; want %q, %v", tt.in, got, quit, tt.want, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		in   string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"right", MenuActionRight},
		{"h", MenuActionLeft},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.in)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(0, 0, 3, 1), core.Color{R: 255, A: 0.5})
	s.DrawText(3, 1, "abc", core.Color{G: 255, A: 0.3}, false)

	got := renderScreen(lipgloss.NewRenderer(io.Discard), s)
	if got != s.String() {
		t.Errorf("renderScreen() = %q, want %q", got, s.String())
	}
}

func TestStyleOfComposites(t *testing.T) {
	c := core.Cell{Rune: 'x', FG: core.Color{R: 255, G: 255, B: 255, A: 0.5}, BG: core.RGB(0, 0, 0)}
	st := styleOf(c)
	if st.fg.A != 1 {
		t.Errorf("foreground should be opaque after compositing, got alpha %v", st.fg.A)
	}
	if st.fg.R < 120 || st.fg.R > 135 {
		t.Errorf("half white over black = %v, want mid gray", st.fg)
	}
}

func TestMenuDifficultySelector(t *testing.T) {
	withStubGame(t)
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "hard")
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("Difficulty() = %s, want hard", m.Difficulty())
	}

	next, _ := m.Update(keyMsg("right"))
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("after right: %s, want fixed", m.Difficulty())
	}
	next, _ = m.Update(keyMsg("right"))
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("selector should wrap to easy, got %s", m.Difficulty())
	}

	if !strings.Contains(m.View(), "Difficulty: < easy >") {
		t.Error("view does not show the selected difficulty")
	}
}

func TestMenuUnknownDifficultyFallsBack(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "insane")
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %s, want normal", m.Difficulty())
	}
}

func TestMenuSelect(t *testing.T) {
	withStubGame(t)
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MenuModel)
	if m.Selected() == nil || cmd == nil {
		t.Fatal("enter should select a game")
	}
}

func TestSessionFlow(t *testing.T) {
	withStubGame(t)
	opts := testOptions(t)
	s := NewSessionModel(opts)

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Move the cursor to the stub game.
	for i, item := range s.menu.items {
		if item.GameID == "stub" {
			s.menu.cursor = i
		}
	}
	update(keyMsg("right"))
	update(keyMsg("enter"))
	if s.view != viewGame {
		t.Fatalf("view = %v, want game", s.view)
	}
	if s.game.opts.Difficulty != "hard" {
		t.Errorf("game difficulty = %q, want hard", s.game.opts.Difficulty)
	}
	if !strings.HasPrefix(s.View(), "STUB") {
		t.Errorf("game view = %q", s.View())
	}

	update(keyMsg("esc"))
	if s.view != viewMenu {
		t.Fatalf("esc from a ready game should return to the menu, view = %v", s.view)
	}
	if s.menu.Difficulty() != config.DifficultyHard {
		t.Errorf("menu forgot the difficulty: %s", s.menu.Difficulty())
	}
	if s.menu.items[s.menu.cursor].GameID != "stub" {
		t.Error("menu cursor should return to the last game")
	}

	update(keyMsg("tab"))
	if s.view != viewScoreboard {
		t.Fatalf("tab should open the scoreboard, view = %v", s.view)
	}
	if !strings.Contains(s.View(), "unavailable") {
		t.Error("scoreboard without a store should say so")
	}
	update(keyMsg("esc"))
	if s.view != viewMenu {
		t.Fatalf("esc should leave the scoreboard, view = %v", s.view)
	}

	next, cmd := s.Update(keyMsg("q"))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

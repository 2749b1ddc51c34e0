package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game key codes and
// menu actions. Keeping the table here makes bindings testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var gameKeys = map[string]core.Key{
	" ":     core.KeySpace,
	"space": core.KeySpace,
	"enter": core.KeyEnter,
	"esc":   core.KeyEscape,
	"up":    core.KeyArrowUp,
	"down":  core.KeyArrowDown,
	"left":  core.KeyArrowLeft,
	"right": core.KeyArrowRight,
	"w":     core.KeyW,
	"W":     core.KeyW,
	"a":     core.KeyA,
	"A":     core.KeyA,
	"s":     core.KeyS,
	"S":     core.KeyS,
	"d":     core.KeyD,
	"D":     core.KeyD,
	"r":     core.KeyR,
	"R":     core.KeyR,
}

// MapKey translates a key message to a game key code.
// Returns core.KeyNone for keys no game listens to, and isQuit for the
// global quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key core.Key, isQuit bool) {
	s := msg.String()
	switch s {
	case "ctrl+c", "q":
		return core.KeyNone, true
	}
	return gameKeys[s], false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/director-arcade/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full arcade flow: menu -> game or scoreboard ->
// menu. Child models signal completion with tea.Quit; the session swallows
// that command and switches views instead.
type SessionModel struct {
	opts       Options
	view       sessionView
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	lastGame   string
	quitting   bool
	err        error
}

// NewSessionModel starts a session on the game menu.
func NewSessionModel(opts Options) SessionModel {
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Runtime, opts.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.view = viewScoreboard
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.lastGame)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID, string(m.menu.Difficulty()))
	}
	return m, cmd
}

func (m SessionModel) startGame(id, difficulty string) (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Difficulty = difficulty

	game, err := registry.Create(id, opts.env())
	if err != nil {
		opts.logger().Error("cannot start game", "game", id, "error", err)
		m.err = fmt.Errorf("tui: %w", err)
		return m.backToMenu()
	}
	opts.logger().Info("game started", "game", id, "difficulty", difficulty)

	m.lastGame = id
	m.view = viewGame
	m.game = NewGameModel(game, opts)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	difficulty := string(m.menu.Difficulty())
	m.view = viewMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime, difficulty)
	for i, item := range m.menu.items {
		if item.GameID == m.lastGame {
			m.menu.cursor = i
		}
	}
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Err returns the last error that sent the session back to the menu.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession hosts the interactive menu in the local terminal.
func RunSession(opts Options) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

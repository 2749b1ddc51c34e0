package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
	"github.com/vovakirdan/director-arcade/internal/storage"
)

// Options configures how games are created and hosted.
type Options struct {
	Store         *storage.Store
	Runtime       core.RuntimeConfig
	ConfigPath    string
	Difficulty    string
	Overrides     map[string]string
	Logger        *log.Logger
	Renderer      *lipgloss.Renderer // nil uses the local terminal
	ScreenshotDir string             // empty means ~/.arcade/screenshots
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// env builds the registry environment for a game.
func (o Options) env() registry.Env {
	return registry.Env{
		Runtime:    o.Runtime,
		ConfigPath: o.ConfigPath,
		Difficulty: o.Difficulty,
		Overrides:  o.Overrides,
		Logger:     o.logger(),
	}
}

// GameModel hosts one game: it pumps frames while the game runs, forwards
// keys, and records the score when a run ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	pump       uint64
	pumping    bool
	recorder   *storage.Recorder
	quitting   bool
	backToMenu bool
	lastShot   string
}

// NewGameModel wraps an already created game.
func NewGameModel(game registry.Game, opts Options) GameModel {
	return GameModel{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		keyMapper: NewKeyMapper(),
		pump:      nextPump(),
		pumping:   game.Running(),
		recorder:  storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty),
	}
}

// Init starts the frame pump.
func (m GameModel) Init() tea.Cmd {
	if !m.pumping {
		return nil
	}
	return frameCmd(m.opts.Runtime.TickRate, m.pump)
}

func (m *GameModel) startPump() tea.Cmd {
	if m.pumping || !m.game.Running() {
		return nil
	}
	m.pump = nextPump()
	m.pumping = true
	return frameCmd(m.opts.Runtime.TickRate, m.pump)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.logger().Warn("screenshot failed", "error", err)
		} else {
			m.lastShot = path
			m.opts.logger().Info("screenshot saved", "path", path)
		}
		return m, nil
	case "b", "esc":
		if m.game.State().Status != director.StatusStarted.String() {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	m.game.KeyPress(key)
	m.recordScore()
	// A restart key turns a halted game back on.
	return m, m.startPump()
}

func (m GameModel) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Pump != m.pump || !m.pumping {
		return m, nil
	}
	m.game.Frame(msg.At)
	m.recordScore()

	if !m.game.Running() {
		m.pumping = false
		return m, nil
	}
	return m, frameCmd(m.opts.Runtime.TickRate, m.pump)
}

// recordScore saves a finished run once.
func (m *GameModel) recordScore() {
	saved, err := m.recorder.Observe(m.game.State())
	if err != nil {
		m.opts.logger().Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	if saved {
		m.opts.logger().Info("score saved", "game", m.game.ID(), "score", m.game.State().Score)
	}
}

// saveScreenshot writes the current canvas as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return renderScreen(m.opts.Renderer, m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastScreenshot returns the path of the most recent Ctrl+S capture.
func (m GameModel) LastScreenshot() string {
	return m.lastShot
}

// Game returns the hosted game.
func (m GameModel) Game() registry.Game {
	return m.game
}

// Run creates the game and hosts it until the player quits.
func Run(gameID string, opts Options) error {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	game, err := registry.Create(gameID, opts.env())
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewGameModel(game, opts),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Game is what the platform drives. Games are built on a director loop:
// the platform pumps host frames and key presses in and copies the canvas out.
// Games never import a UI toolkit.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Frame is called for every host frame. The game decides whether
	// enough time has passed to advance.
	Frame(now time.Time)

	// Running reports whether the host should keep scheduling frames.
	// It turns false on game over and true again after a restart.
	Running() bool

	// KeyPress delivers a key code.
	KeyPress(key core.Key)

	// Resize tells the game the host surface changed size.
	Resize(w, h int)

	// Render copies the current canvas into dst.
	Render(dst *core.Screen)

	// State returns the current game state (score, status).
	State() core.GameState
}

// Env carries everything a factory needs to build a game.
type Env struct {
	Runtime    core.RuntimeConfig
	ConfigPath string            // Explicit YAML config, empty for the search path
	Difficulty string            // Preset name, empty for normal
	Overrides  map[string]string // Director config overrides (key=value)
	Logger     *log.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func(env Env) (Game, error)

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the game's
// configuration cannot be loaded.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}

	g, err := e.factory(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

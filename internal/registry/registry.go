// Package registry maps game mode IDs to factories. Modes register
// themselves in init() so the CLI and menus can list and create them by
// name without importing every variant by hand.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// Game is what a frontend drives once per tick.
// Implementations keep all world state; the frontend only maps keys to
// actions, paces ticks and paints the screen.
type Game interface {
	// ID returns the mode identifier used on the command line and in the
	// run history (e.g. "skyjump", "skyjump_endless").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset loads tuning, reseeds and returns to the home screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared cell buffer.
	Render(dst *core.Screen)

	// State returns the coarse status without advancing.
	State() core.GameState
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id.
// Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

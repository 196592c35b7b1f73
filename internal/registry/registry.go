// Package registry is the discovery point between games and the platform.
// A game registers a factory in its init() and the platform instantiates
// it by ID, so neither side imports the other directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tinypanel/arcade/internal/core"
)

// Game is the contract every arcade game implements. Games are pure
// simulations: no terminal access, no Bubble Tea, no clocks of their own.
// The platform owns input mapping, the tick loop and presentation.
type Game interface {
	// ID is a stable identifier used for CLI commands and score storage.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset initializes or restarts the game. The RuntimeConfig carries
	// the screen dimensions, tick rate and RNG seed; identical configs
	// and inputs must replay identically.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into the screen buffer. The buffer is cleared before
	// the call.
	Render(dst *core.Screen)

	// State reports score, level and the over/paused flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-Reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under the given ID. Meant to be called
// from a game package's init(); duplicate IDs are a programming error
// and panic.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(factories))
	for id, title := range titles {
		infos = append(infos, GameInfo{ID: id, Title: title})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

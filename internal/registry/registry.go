// Package registry maps game IDs to factories. Game packages register
// themselves from init, so importing a game makes it playable.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/twenty48/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the platform drives on every tick.
// Implementations hold pure game logic and never touch the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score storage key.
	ID() string
	Title() string

	// Reset starts a new round with the given seed and screen size.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size. The round in progress is kept.
	Resize(w, h int)

	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which may hold the previous frame.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. Registering the same id twice
// panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(games, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return games
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

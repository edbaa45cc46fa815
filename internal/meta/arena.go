package meta

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/game-maker/internal/game"
)

// Arena owns the copies of the edited game the editor refers to by id.
type Arena struct {
	games map[uuid.UUID]*game.Game
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{games: make(map[uuid.UUID]*game.Game)}
}

// Add stores g and returns its new id.
func (a *Arena) Add(g *game.Game) uuid.UUID {
	if a.games == nil {
		a.games = make(map[uuid.UUID]*game.Game)
	}
	id := uuid.New()
	a.games[id] = g
	return id
}

// Get returns the game stored under id.
func (a *Arena) Get(id uuid.UUID) (*game.Game, bool) {
	g, ok := a.games[id]
	return g, ok
}

// Take removes and returns the game stored under id.
func (a *Arena) Take(id uuid.UUID) (*game.Game, bool) {
	g, ok := a.games[id]
	if ok {
		delete(a.games, id)
	}
	return g, ok
}

// Len is the number of stored games.
func (a *Arena) Len() int { return len(a.games) }

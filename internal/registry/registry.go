// Package registry holds the built-in cartridges. Demo packages register
// their factories in init() functions, so the CLI can list and start them
// without knowing about each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/game-maker/internal/cartridge"
)

// Factory builds a fresh copy of a built-in cartridge.
type Factory func() cartridge.Cartridge

// GameInfo contains metadata about a registered cartridge.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a cartridge factory to the registry.
// Typically called from a demo's init() function.
// Panics if a cartridge with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: cartridge %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered cartridges, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the cartridge registered under id.
func Create(id string) (cartridge.Cartridge, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return cartridge.Cartridge{}, fmt.Errorf("registry: unknown cartridge %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a cartridge with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

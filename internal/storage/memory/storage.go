package memory

import (
	"context"
	"sync"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// Storage is an in-memory implementation of the store interface, used for
// tests and throwaway development runs
type Storage struct {
	mu      sync.RWMutex
	players []*model.Player
	catalog model.SkinCatalog
}

// New creates an in-memory store seeded with the given records.
// With no seed the store starts empty.
func New(seed ...*model.Player) *Storage {
	s := &Storage{
		catalog: model.DefaultSkinCatalog(),
	}
	for _, p := range seed {
		s.players = append(s.players, p.Clone())
	}
	return s
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePlayers(s.players), nil
}

func (s *Storage) ReplacePlayers(ctx context.Context, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = clonePlayers(players)
	return nil
}

func (s *Storage) LoadCatalog(ctx context.Context) (model.SkinCatalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, nil
}

// SetCatalog replaces the catalog served by LoadCatalog (test hook)
func (s *Storage) SetCatalog(catalog model.SkinCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// clonePlayers deep-copies a collection so the store never shares record
// pointers with its callers
func clonePlayers(players []*model.Player) []*model.Player {
	out := make([]*model.Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}

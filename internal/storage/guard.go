package storage

import (
	"context"
	"sync"

	"github.com/zerog-odyssey/backend/internal/model"
)

// Guard serialises read-modify-write cycles against a Store.
//
// The store exposes only whole-collection load and replace, so two
// overlapping cycles would silently discard one of the updates. The guard
// holds a single process-wide lock for the full load, compute, replace
// span of every mutation. The lock is only ever held for one in-memory
// transaction plus one document write, never across a network round trip
// to a caller.
type Guard struct {
	mu    sync.Mutex
	store Store
}

// NewGuard wraps a store in a transaction guard
func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// Update runs fn inside the critical section. fn receives the current
// collection and returns the collection to persist. If fn returns an
// error, nothing is persisted and the error is propagated; business
// rejections abort the cycle the same way infrastructure faults do.
func (g *Guard) Update(ctx context.Context, fn func(players []*model.Player) ([]*model.Player, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	players, err := g.store.LoadPlayers(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(players)
	if err != nil {
		return err
	}

	return g.store.ReplacePlayers(ctx, updated)
}

// Snapshot returns the last-persisted collection without taking the
// lock. Reads not tied to a mutation may run against a snapshot that a
// concurrent update is about to supersede.
func (g *Guard) Snapshot(ctx context.Context) ([]*model.Player, error) {
	return g.store.LoadPlayers(ctx)
}

// Catalog returns the read-only skin price table
func (g *Guard) Catalog(ctx context.Context) (model.SkinCatalog, error) {
	return g.store.LoadCatalog(ctx)
}

// FindByUsername returns the record with the given username from a
// collection, or ErrPlayerNotFound. Lookup is linear; the store holds one
// bounded record type.
func FindByUsername(players []*model.Player, username string) (*model.Player, error) {
	for _, p := range players {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

package storage

import (
	"context"
	"errors"

	"github.com/zerog-odyssey/backend/internal/model"
)

// ErrCorruptStore indicates the persisted collection could not be decoded.
// This is an infrastructure fault: the operation must fail rather than
// silently truncate the collection.
var ErrCorruptStore = errors.New("player store is corrupt")

// Store defines the interface for the whole-document record store.
//
// There is deliberately no partial-record update primitive: every mutation
// is a load-whole, modify-in-memory, replace-whole cycle. Callers that
// mutate must serialise those cycles through a Guard to avoid lost updates.
type Store interface {
	// LoadPlayers returns the full player collection. A missing backing
	// document is not an error: implementations return the deterministic
	// default collection instead.
	LoadPlayers(ctx context.Context) ([]*model.Player, error)

	// ReplacePlayers persists the complete collection atomically. An
	// external observer sees either the old document or the new one in
	// full, never a partial write.
	ReplacePlayers(ctx context.Context, players []*model.Player) error

	// LoadCatalog returns the skin price table. Implementations fall back
	// to model.DefaultSkinCatalog when no catalog document exists.
	LoadCatalog(ctx context.Context) (model.SkinCatalog, error)
}

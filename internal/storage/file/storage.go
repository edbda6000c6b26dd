package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// Config holds the paths for the file-backed store
type Config struct {
	// PlayersPath is the JSON document holding the full player collection
	PlayersPath string
	// CatalogPath is the JSON document holding the skin price table
	CatalogPath string
}

// DefaultConfig returns the default document locations
func DefaultConfig() Config {
	return Config{
		PlayersPath: filepath.Join("data", "players.json"),
		CatalogPath: filepath.Join("data", "skins.json"),
	}
}

// ConfigForDir returns a Config with the standard document names under dir
func ConfigForDir(dir string) Config {
	return Config{
		PlayersPath: filepath.Join(dir, "players.json"),
		CatalogPath: filepath.Join(dir, "skins.json"),
	}
}

// Storage persists the player collection as a single JSON document.
//
// Replacement is atomic: the new document is written to a temp file in the
// same directory and renamed over the old one, so a reader always sees
// either the previous collection or the new one in full.
type Storage struct {
	cfg Config
}

// New creates a file-backed store. The data directory is created eagerly
// so the first replace cannot fail on a missing parent.
func New(cfg Config) (*Storage, error) {
	if cfg.PlayersPath == "" {
		cfg = DefaultConfig()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.PlayersPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Storage{cfg: cfg}, nil
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]*model.Player, error) {
	data, err := os.ReadFile(s.cfg.PlayersPath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing document is not an error: serve the seed collection
			return storage.DefaultPlayers(), nil
		}
		return nil, fmt.Errorf("read players document: %w", err)
	}

	var players []*model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", storage.ErrCorruptStore, s.cfg.PlayersPath, err)
	}

	return players, nil
}

func (s *Storage) ReplacePlayers(ctx context.Context, players []*model.Player) error {
	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		return fmt.Errorf("encode players document: %w", err)
	}

	dir := filepath.Dir(s.cfg.PlayersPath)
	tmp, err := os.CreateTemp(dir, ".players-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}

	// A failed write must leave the previous document intact
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp document: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.cfg.PlayersPath); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace players document: %w", err)
	}

	return nil
}

func (s *Storage) LoadCatalog(ctx context.Context) (model.SkinCatalog, error) {
	data, err := os.ReadFile(s.cfg.CatalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSkinCatalog(), nil
		}
		return nil, fmt.Errorf("read catalog document: %w", err)
	}

	var catalog model.SkinCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", storage.ErrCorruptStore, s.cfg.CatalogPath, err)
	}

	return catalog, nil
}

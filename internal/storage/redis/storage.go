package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// Key prefix for all account data
const keyPrefix = "zgbackend"

// The whole player collection lives under a single key; the store contract
// is whole-document load and replace, so there is no per-record keying.
func playersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}

func catalogKey() string {
	return fmt.Sprintf("%s:catalog", keyPrefix)
}

// Storage is a Redis-backed implementation of the store interface. The
// collection is one JSON document at a single key, so SET gives the same
// all-or-nothing replacement the file store gets from rename.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]*model.Player, error) {
	data, err := s.client.Get(ctx, playersKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return storage.DefaultPlayers(), nil
		}
		return nil, err
	}

	var players []*model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", storage.ErrCorruptStore, playersKey(), err)
	}
	return players, nil
}

func (s *Storage) ReplacePlayers(ctx context.Context, players []*model.Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("encode players document: %w", err)
	}
	return s.client.Set(ctx, playersKey(), data, 0).Err()
}

func (s *Storage) LoadCatalog(ctx context.Context) (model.SkinCatalog, error) {
	data, err := s.client.Get(ctx, catalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.DefaultSkinCatalog(), nil
		}
		return nil, err
	}

	var catalog model.SkinCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", storage.ErrCorruptStore, catalogKey(), err)
	}
	return catalog, nil
}

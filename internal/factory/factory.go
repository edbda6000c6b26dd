package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/zerog-odyssey/backend/internal/dependencies/clock"
	"github.com/zerog-odyssey/backend/internal/services/account"
	"github.com/zerog-odyssey/backend/internal/services/economy"
	"github.com/zerog-odyssey/backend/internal/services/session"
	"github.com/zerog-odyssey/backend/internal/storage"
	filestorage "github.com/zerog-odyssey/backend/internal/storage/file"
	"github.com/zerog-odyssey/backend/internal/storage/memory"
	redisstorage "github.com/zerog-odyssey/backend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store
	Guard *storage.Guard

	// External dependencies
	Clock clock.Clock

	// Services
	Sessions       *session.Issuer
	AccountService *account.Service
	EconomyService *economy.Service
}

// Config holds configuration for the application factory
type Config struct {
	// SessionConfig configures token signing. Secret is required.
	SessionConfig session.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// FileConfig holds document paths (used when StorageType is "file")
	FileConfig filestorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		fileStore, err := filestorage.New(cfg.FileConfig)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.SessionConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, sessionCfg session.Config, logger *slog.Logger) (*App, error) {
	sessions, err := session.New(sessionCfg, clk)
	if err != nil {
		return nil, err
	}

	guard := storage.NewGuard(store)
	accountService := account.New(guard, sessions, clk, logger)
	economyService := economy.New(guard, logger)

	return &App{
		Store:          store,
		Guard:          guard,
		Clock:          clk,
		Sessions:       sessions,
		AccountService: accountService,
		EconomyService: economyService,
	}, nil
}

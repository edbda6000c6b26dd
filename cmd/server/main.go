package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/zerog-odyssey/backend/internal/api"
	"github.com/zerog-odyssey/backend/internal/factory"
	filestorage "github.com/zerog-odyssey/backend/internal/storage/file"
	redisstorage "github.com/zerog-odyssey/backend/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("ZG_STORE"),
	}

	cfg.SessionConfig.Secret = os.Getenv("ZG_JWT_SECRET")
	if cfg.SessionConfig.Secret == "" {
		logger.Error("ZG_JWT_SECRET is required")
		os.Exit(1)
	}

	if dataDir := os.Getenv("ZG_DATA_DIR"); dataDir != "" {
		cfg.FileConfig = filestorage.ConfigForDir(dataDir)
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("ZG_REDIS_URL")
		if redisURL == "" {
			logger.Error("ZG_REDIS_URL required when ZG_STORE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Sessions:       app.Sessions,
		AccountService: app.AccountService,
		EconomyService: app.EconomyService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if addr := os.Getenv("ZG_ADDR"); addr != "" {
		host, port, err := splitAddr(addr)
		if err != nil {
			logger.Error("invalid ZG_ADDR", slog.String("addr", addr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		serverConfig.Host = host
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// splitAddr parses a "host:port" listen address
func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

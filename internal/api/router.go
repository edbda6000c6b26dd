package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zerog-odyssey/backend/internal/api/handler"
	"github.com/zerog-odyssey/backend/internal/api/middleware"
	"github.com/zerog-odyssey/backend/internal/services/account"
	"github.com/zerog-odyssey/backend/internal/services/economy"
	"github.com/zerog-odyssey/backend/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Sessions       *session.Issuer
	AccountService *account.Service
	EconomyService *economy.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService)
	playerHandler := handler.NewPlayerHandler(cfg.AccountService, cfg.EconomyService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Sessions)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no token required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Public read-only routes; the game's menu screens render these
	// before the player logs in
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/skins", playerHandler.GetSkins).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", playerHandler.GetLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/balance", playerHandler.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/current-skin", playerHandler.GetCurrentSkin).Methods(http.MethodGet)

	// Protected routes; identity comes from the verified token, never
	// from the request body
	protected := api.PathPrefix("/players").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/me/score", playerHandler.SubmitScore).Methods(http.MethodPost)
	protected.HandleFunc("/me/stars", playerHandler.AddStars).Methods(http.MethodPost)
	protected.HandleFunc("/me/skins/purchase", playerHandler.PurchaseSkin).Methods(http.MethodPost)
	protected.HandleFunc("/me/skin", playerHandler.SelectSkin).Methods(http.MethodPut)
	protected.HandleFunc("/{username}/skins/{skin_id}", playerHandler.CheckSkin).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

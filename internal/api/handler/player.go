package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zerog-odyssey/backend/internal/api/middleware"
	"github.com/zerog-odyssey/backend/internal/api/request"
	"github.com/zerog-odyssey/backend/internal/api/response"
	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/services/account"
	"github.com/zerog-odyssey/backend/internal/services/economy"
)

// PlayerHandler handles account queries and economy transactions
type PlayerHandler struct {
	accounts *account.Service
	economy  *economy.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(accounts *account.Service, economySvc *economy.Service) *PlayerHandler {
	return &PlayerHandler{
		accounts: accounts,
		economy:  economySvc,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.accounts.Players(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	player, err := h.accounts.FindByUsername(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// GetBalance handles GET /api/v1/players/{username}/balance
func (h *PlayerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	stars, err := h.economy.Balance(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalanceResponse{
		Username: username,
		Stars:    stars,
	})
}

// GetCurrentSkin handles GET /api/v1/players/{username}/current-skin
func (h *PlayerHandler) GetCurrentSkin(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	skin, err := h.economy.CurrentSkin(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CurrentSkinResponse{
		Username: username,
		SkinID:   int(skin),
	})
}

// CheckSkin handles GET /api/v1/players/{username}/skins/{skin_id}
func (h *PlayerHandler) CheckSkin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	skinID, err := parseSkinID(vars["skin_id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	owned, err := h.economy.OwnsSkin(r.Context(), username, skinID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OwnershipResponse{
		SkinID:   int(skinID),
		Unlocked: owned,
	})
}

// SubmitScore handles POST /api/v1/players/me/score
func (h *PlayerHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.economy.RecordScore(r.Context(), username, req.Score)
	improved := err == nil
	if err != nil && !errors.Is(err, model.ErrNoImprovement) {
		WriteError(w, err)
		return
	}

	best, err := h.economy.BestScore(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreResponse{
		Improved:  improved,
		BestScore: best,
	})
}

// AddStars handles POST /api/v1/players/me/stars
func (h *PlayerHandler) AddStars(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.economy.Credit(r.Context(), username, req.Stars); err != nil {
		WriteError(w, err)
		return
	}

	stars, err := h.economy.Balance(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalanceResponse{
		Username: username,
		Stars:    stars,
	})
}

// PurchaseSkin handles POST /api/v1/players/me/skins/purchase
func (h *PlayerHandler) PurchaseSkin(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.economy.Purchase(r.Context(), username, model.SkinID(req.SkinID)); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.accounts.FindByUsername(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SelectSkin handles PUT /api/v1/players/me/skin
func (h *PlayerHandler) SelectSkin(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.SelectSkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.economy.SelectSkin(r.Context(), username, model.SkinID(req.SkinID)); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CurrentSkinResponse{
		Username: username,
		SkinID:   req.SkinID,
	})
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (h *PlayerHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.economy.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}

// GetSkins handles GET /api/v1/skins
func (h *PlayerHandler) GetSkins(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.economy.Catalog(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CatalogFromModel(catalog))
}

// parseSkinID parses a skin id path variable
func parseSkinID(raw string) (model.SkinID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, NewInvalidRequestError("skin_id must be a non-negative integer")
	}
	return model.SkinID(id), nil
}

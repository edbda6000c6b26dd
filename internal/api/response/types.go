package response

import (
	"time"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/services/account"
	"github.com/zerog-odyssey/backend/internal/services/economy"
)

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// AuthResponseFromAuth converts an account.Auth
func AuthResponseFromAuth(a *account.Auth) AuthResponse {
	return AuthResponse{
		Username: a.Username,
		Token:    a.Token,
	}
}

// Player represents an account in API responses. The password hash is
// never exposed.
type Player struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Birthdate   string    `json:"birthdate"`
	Stars       int       `json:"stars"`
	BestScore   int       `json:"best_score"`
	OwnedSkins  []int     `json:"owned_skins"`
	CurrentSkin int       `json:"current_skin"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	skins := make([]int, len(p.OwnedSkins))
	for i, id := range p.OwnedSkins {
		skins[i] = int(id)
	}
	return Player{
		ID:          int(p.ID),
		Username:    p.Username,
		Birthdate:   p.Birthdate,
		Stars:       p.Stars,
		BestScore:   p.BestScore,
		OwnedSkins:  skins,
		CurrentSkin: int(p.CurrentSkin),
		CreatedAt:   p.CreatedAt,
	}
}

// BalanceResponse reports a star balance
type BalanceResponse struct {
	Username string `json:"username"`
	Stars    int    `json:"stars"`
}

// CurrentSkinResponse reports the equipped skin
type CurrentSkinResponse struct {
	Username string `json:"username"`
	SkinID   int    `json:"skin_id"`
}

// OwnershipResponse reports whether a skin is unlocked
type OwnershipResponse struct {
	SkinID   int  `json:"skin_id"`
	Unlocked bool `json:"unlocked"`
}

// ScoreResponse reports the outcome of a score submission. A submission
// that does not beat the best score is an ordinary outcome, not an error.
type ScoreResponse struct {
	Improved  bool `json:"improved"`
	BestScore int  `json:"best_score"`
}

// LeaderboardEntry is one row of the leaderboard
type LeaderboardEntry struct {
	Username  string `json:"username"`
	BestScore int    `json:"best_score"`
}

// LeaderboardFromEntries converts economy leaderboard rows
func LeaderboardFromEntries(entries []economy.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Username:  e.Username,
			BestScore: e.BestScore,
		}
	}
	return out
}

// CatalogFromModel converts the skin price table to a JSON-friendly map
func CatalogFromModel(catalog model.SkinCatalog) map[int]int {
	out := make(map[int]int, len(catalog))
	for id, price := range catalog {
		out[int(id)] = price
	}
	return out
}

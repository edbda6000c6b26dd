package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerog-odyssey/backend/internal/api"
	"github.com/zerog-odyssey/backend/internal/api/response"
	"github.com/zerog-odyssey/backend/internal/factory"
	"github.com/zerog-odyssey/backend/internal/services/session"
	"github.com/zerog-odyssey/backend/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// API tests are integration tests - use the production factory over
	// the in-memory store
	app, err := factory.New(factory.Config{
		SessionConfig: session.Config{Secret: "api-test-secret"},
		StorageType:   factory.StorageTypeMemory,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		Sessions:       app.Sessions,
		AccountService: app.AccountService,
		EconomyService: app.EconomyService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// register creates an account and returns its session token
func (ts *testServer) register(t *testing.T, username string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username":  username,
		"password":  "Passw0rd",
		"birthdate": "2000-01-01",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var auth response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))
	return auth.Token
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username":  "alice",
		"password":  "Passw0rd",
		"birthdate": "2000-01-01",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var auth response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))
	assert.Equal(t, "alice", auth.Username)
	assert.NotEmpty(t, auth.Token)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{"missing username", map[string]string{"password": "Passw0rd", "birthdate": "2000-01-01"}, http.StatusBadRequest},
		{"weak password", map[string]string{"username": "bob", "password": "password", "birthdate": "2000-01-01"}, http.StatusBadRequest},
		{"bad birthdate", map[string]string{"username": "bob", "password": "Passw0rd", "birthdate": "1850-01-01"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, tt.code, rr.Code)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username":  "alice",
		"password":  "Other1pass",
		"birthdate": "2001-01-01",
	}, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "Passw0rd",
	}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "WrongPass1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/me/score", map[string]int{"score": 1}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, "alice", player.Username)
	assert.Equal(t, 0, player.Stars)
	assert.Equal(t, []int{0}, player.OwnedSkins)
	assert.Equal(t, 0, player.CurrentSkin)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestPurchaseFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice")

	// Skin 3 costs 50; a fresh account has no stars
	rr := ts.request(http.MethodPost, "/api/v1/players/me/skins/purchase", map[string]int{"skin_id": 3}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/me/stars", map[string]int{"stars": 100}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var balance response.BalanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, 100, balance.Stars)

	rr = ts.request(http.MethodPost, "/api/v1/players/me/skins/purchase", map[string]int{"skin_id": 3}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, 50, player.Stars)
	assert.Contains(t, player.OwnedSkins, 3)

	// Repeat purchase
	rr = ts.request(http.MethodPost, "/api/v1/players/me/skins/purchase", map[string]int{"skin_id": 3}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Equip it
	rr = ts.request(http.MethodPut, "/api/v1/players/me/skin", map[string]int{"skin_id": 3}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	// Equipping an unowned skin is rejected
	rr = ts.request(http.MethodPut, "/api/v1/players/me/skin", map[string]int{"skin_id": 7}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/alice/current-skin", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var current response.CurrentSkinResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &current))
	assert.Equal(t, 3, current.SkinID)
}

func TestCheckSkinOwnership(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/players/alice/skins/0", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var ownership response.OwnershipResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ownership))
	assert.True(t, ownership.Unlocked)

	rr = ts.request(http.MethodGet, "/api/v1/players/alice/skins/5", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ownership))
	assert.False(t, ownership.Unlocked)
}

func TestScoreSubmission(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/players/me/score", map[string]int{"score": 10}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var score response.ScoreResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &score))
	assert.True(t, score.Improved)
	assert.Equal(t, 10, score.BestScore)

	// Lower score does not overwrite the best and is not an error
	rr = ts.request(http.MethodPost, "/api/v1/players/me/score", map[string]int{"score": 5}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &score))
	assert.False(t, score.Improved)
	assert.Equal(t, 10, score.BestScore)
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	for i, username := range []string{"alice", "bob", "carol"} {
		token := ts.register(t, username)
		rr := ts.request(http.MethodPost, "/api/v1/players/me/score", map[string]int{"score": (i + 1) * 10}, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var board []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
	require.Len(t, board, 3)
	assert.Equal(t, "carol", board[0].Username)
	assert.Equal(t, 30, board[0].BestScore)
	assert.Equal(t, "alice", board[2].Username)
}

func TestSkinCatalog(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/skins", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var catalog map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &catalog))
	assert.Equal(t, 0, catalog["0"])
	assert.Equal(t, 50, catalog["3"])
}

func TestBalanceOfUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/nobody/balance", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreditRejectsNegativeAmount(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/players/me/stars", map[string]int{"stars": -10}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/alice/balance", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var balance response.BalanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, 0, balance.Stars)
}

func TestPlayersListHidesPasswordHashes(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "alice", players[0].Username)
}

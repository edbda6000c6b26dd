package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/services/session"
	filestorage "github.com/zerog-odyssey/backend/internal/storage/file"
)

// End-to-end flow through the factory-wired services over a real file
// store: register, earn, purchase, equip, score, rank.
func TestAccountLifecycleOverFileStore(t *testing.T) {
	dir := t.TempDir()

	app, err := New(Config{
		SessionConfig: sessionConfig(),
		StorageType:   StorageTypeFile,
		FileConfig: filestorage.Config{
			PlayersPath: filepath.Join(dir, "players.json"),
			CatalogPath: filepath.Join(dir, "skins.json"),
		},
	})
	require.NoError(t, err)

	ctx := context.Background()

	auth, err := app.AccountService.Register(ctx, "alice", "Passw0rd", "2000-01-01")
	require.NoError(t, err)

	username, err := app.Sessions.Verify(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	// Fresh account, insufficient funds
	err = app.EconomyService.Purchase(ctx, "alice", 3)
	assert.ErrorIs(t, err, model.ErrInsufficientStars)

	require.NoError(t, app.EconomyService.Credit(ctx, "alice", 100))
	require.NoError(t, app.EconomyService.Purchase(ctx, "alice", 3))
	require.NoError(t, app.EconomyService.SelectSkin(ctx, "alice", 3))
	require.NoError(t, app.EconomyService.RecordScore(ctx, "alice", 42))

	// A second app over the same documents sees the persisted state
	reopened, err := New(Config{
		SessionConfig: sessionConfig(),
		StorageType:   StorageTypeFile,
		FileConfig: filestorage.Config{
			PlayersPath: filepath.Join(dir, "players.json"),
			CatalogPath: filepath.Join(dir, "skins.json"),
		},
	})
	require.NoError(t, err)

	alice, err := reopened.AccountService.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, alice.Stars)
	assert.Equal(t, 42, alice.BestScore)
	assert.Equal(t, model.SkinID(3), alice.CurrentSkin)
	assert.True(t, alice.OwnsSkin(3))

	board, err := reopened.EconomyService.Leaderboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, board)
	assert.Equal(t, "alice", board[0].Username)
	assert.Equal(t, 42, board[0].BestScore)

	// The seeded admin account can log in
	_, err = reopened.AccountService.Login(ctx, "admin", "admin")
	assert.NoError(t, err)
}

func TestFactoryRejectsMissingSecret(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeMemory})
	assert.Error(t, err)
}

func TestFactoryRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{
		SessionConfig: sessionConfig(),
		StorageType:   "cassette-tape",
	})
	assert.Error(t, err)
}

func sessionConfig() session.Config {
	return session.Config{Secret: "integration-secret"}
}

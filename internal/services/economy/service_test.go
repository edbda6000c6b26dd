package economy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
	"github.com/zerog-odyssey/backend/internal/storage/memory"
	"github.com/zerog-odyssey/backend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	guard   *storage.Guard
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	alice := model.NewPlayer(1, "alice", "hash", "2000-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	s.storage = memory.New(alice)
	s.guard = storage.NewGuard(s.storage)
	s.service = New(s.guard, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) alice() *model.Player {
	players, err := s.guard.Snapshot(s.ctx)
	s.Require().NoError(err)
	player, err := storage.FindByUsername(players, "alice")
	s.Require().NoError(err)
	return player
}

// Purchase tests

func (s *ServiceSuite) TestPurchaseWithInsufficientStars() {
	err := s.service.Purchase(s.ctx, "alice", 3)
	s.ErrorIs(err, model.ErrInsufficientStars)
	s.Equal(0, s.alice().Stars)

	// Failure is idempotent: a second attempt still changes nothing
	err = s.service.Purchase(s.ctx, "alice", 3)
	s.ErrorIs(err, model.ErrInsufficientStars)
	s.Equal(0, s.alice().Stars)
}

func (s *ServiceSuite) TestPurchaseDeductsExactlyOnce() {
	s.Require().NoError(s.service.Credit(s.ctx, "alice", 100))

	err := s.service.Purchase(s.ctx, "alice", 3) // price 50
	s.Require().NoError(err)

	alice := s.alice()
	s.Equal(50, alice.Stars)
	s.True(alice.OwnsSkin(3))

	// Repeat purchase is rejected and the balance stays put
	err = s.service.Purchase(s.ctx, "alice", 3)
	s.ErrorIs(err, model.ErrSkinAlreadyOwned)
	s.Equal(50, s.alice().Stars)
}

func (s *ServiceSuite) TestPurchaseUnknownSkin() {
	err := s.service.Purchase(s.ctx, "alice", 99)
	s.ErrorIs(err, model.ErrSkinNotFound)
}

func (s *ServiceSuite) TestPurchaseUnknownPlayer() {
	err := s.service.Purchase(s.ctx, "nobody", 3)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// SelectSkin tests

func (s *ServiceSuite) TestSelectSkinRequiresOwnership() {
	err := s.service.SelectSkin(s.ctx, "alice", 9)
	s.ErrorIs(err, model.ErrSkinNotOwned)
	s.Equal(model.DefaultSkin, s.alice().CurrentSkin)
}

func (s *ServiceSuite) TestSelectOwnedSkin() {
	s.Require().NoError(s.service.Credit(s.ctx, "alice", 100))
	s.Require().NoError(s.service.Purchase(s.ctx, "alice", 3))

	err := s.service.SelectSkin(s.ctx, "alice", 3)
	s.Require().NoError(err)

	alice := s.alice()
	s.Equal(model.SkinID(3), alice.CurrentSkin)
	s.True(alice.OwnsSkin(alice.CurrentSkin))
}

// RecordScore tests

func (s *ServiceSuite) TestRecordScoreImproves() {
	err := s.service.RecordScore(s.ctx, "alice", 10)
	s.Require().NoError(err)
	s.Equal(10, s.alice().BestScore)
}

func (s *ServiceSuite) TestRecordScoreIsMonotonic() {
	for _, score := range []int{10, 5, 10, 7, 42, 41} {
		_ = s.service.RecordScore(s.ctx, "alice", score)
	}
	s.Equal(42, s.alice().BestScore)
}

func (s *ServiceSuite) TestRecordScoreNoImprovement() {
	s.Require().NoError(s.service.RecordScore(s.ctx, "alice", 10))

	err := s.service.RecordScore(s.ctx, "alice", 5)
	s.ErrorIs(err, model.ErrNoImprovement)
	s.Equal(10, s.alice().BestScore)

	err = s.service.RecordScore(s.ctx, "alice", 10)
	s.ErrorIs(err, model.ErrNoImprovement)
}

func (s *ServiceSuite) TestRecordScoreRejectsNegative() {
	err := s.service.RecordScore(s.ctx, "alice", -1)
	s.ErrorIs(err, model.ErrInvalidAmount)
}

// Credit tests

func (s *ServiceSuite) TestCredit() {
	s.Require().NoError(s.service.Credit(s.ctx, "alice", 100))
	s.Equal(100, s.alice().Stars)

	s.Require().NoError(s.service.Credit(s.ctx, "alice", 0))
	s.Equal(100, s.alice().Stars)
}

func (s *ServiceSuite) TestCreditRejectsNegative() {
	err := s.service.Credit(s.ctx, "alice", -5)
	s.ErrorIs(err, model.ErrInvalidAmount)
	s.Equal(0, s.alice().Stars)
}

func (s *ServiceSuite) TestConcurrentCreditsAreNotLost() {
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.service.Credit(s.ctx, "alice", 1)
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(n, s.alice().Stars)
}

// Query tests

func (s *ServiceSuite) TestLeaderboardSortsAndBreaksTiesByStoreOrder() {
	players := []*model.Player{
		model.NewPlayer(1, "alice", "hash", "2000-01-01", time.Now()),
		model.NewPlayer(2, "bob", "hash", "2000-01-01", time.Now()),
		model.NewPlayer(3, "carol", "hash", "2000-01-01", time.Now()),
		model.NewPlayer(4, "dave", "hash", "2000-01-01", time.Now()),
	}
	players[0].BestScore = 10
	players[1].BestScore = 30
	players[2].BestScore = 10
	players[3].BestScore = 20
	s.Require().NoError(s.storage.ReplacePlayers(s.ctx, players))

	board, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)

	s.Equal([]LeaderboardEntry{
		{Username: "bob", BestScore: 30},
		{Username: "dave", BestScore: 20},
		{Username: "alice", BestScore: 10},
		{Username: "carol", BestScore: 10},
	}, board)
}

func (s *ServiceSuite) TestOwnership() {
	owned, err := s.service.OwnsSkin(s.ctx, "alice", model.DefaultSkin)
	s.Require().NoError(err)
	s.True(owned)

	owned, err = s.service.OwnsSkin(s.ctx, "alice", 5)
	s.Require().NoError(err)
	s.False(owned)

	_, err = s.service.OwnsSkin(s.ctx, "nobody", 0)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestBalanceAndCurrentSkinQueries() {
	balance, err := s.service.Balance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, balance)

	skin, err := s.service.CurrentSkin(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.DefaultSkin, skin)

	_, err = s.service.Balance(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.service.CurrentSkin(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Full scenario from the game client's point of view

func (s *ServiceSuite) TestPurchaseScenario() {
	err := s.service.Purchase(s.ctx, "alice", 3)
	s.ErrorIs(err, model.ErrInsufficientStars)

	s.Require().NoError(s.service.Credit(s.ctx, "alice", 100))
	balance, _ := s.service.Balance(s.ctx, "alice")
	s.Equal(100, balance)

	s.Require().NoError(s.service.Purchase(s.ctx, "alice", 3))
	balance, _ = s.service.Balance(s.ctx, "alice")
	s.Equal(50, balance)

	owned, _ := s.service.OwnsSkin(s.ctx, "alice", 3)
	s.True(owned)

	s.Require().NoError(s.service.SelectSkin(s.ctx, "alice", 3))
	skin, _ := s.service.CurrentSkin(s.ctx, "alice")
	s.Equal(model.SkinID(3), skin)

	err = s.service.SelectSkin(s.ctx, "alice", 9)
	s.ErrorIs(err, model.ErrSkinNotOwned)
	skin, _ = s.service.CurrentSkin(s.ctx, "alice")
	s.Equal(model.SkinID(3), skin)
}

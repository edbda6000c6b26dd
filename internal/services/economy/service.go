package economy

import (
	"context"
	"log/slog"
	"sort"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// Service applies the transactional rules for stars, skin ownership and
// best scores. Every mutation is one read-modify-write cycle through the
// store guard; every precondition failure leaves the record untouched.
type Service struct {
	guard  *storage.Guard
	logger *slog.Logger
}

// New creates a new economy service
func New(guard *storage.Guard, logger *slog.Logger) *Service {
	return &Service{
		guard:  guard,
		logger: logger,
	}
}

// LeaderboardEntry is one row of the best-score ranking
type LeaderboardEntry struct {
	Username  string
	BestScore int
}

// Purchase unlocks a skin in exchange for stars. The price is deducted
// exactly once on success; on any precondition failure the balance is
// left unchanged.
func (s *Service) Purchase(ctx context.Context, username string, skin model.SkinID) error {
	catalog, err := s.guard.Catalog(ctx)
	if err != nil {
		return err
	}

	price, ok := catalog.Price(skin)
	if !ok {
		return model.ErrSkinNotFound
	}

	err = s.guard.Update(ctx, func(players []*model.Player) ([]*model.Player, error) {
		player, err := storage.FindByUsername(players, username)
		if err != nil {
			return nil, err
		}
		if player.OwnsSkin(skin) {
			return nil, model.ErrSkinAlreadyOwned
		}
		if player.Stars < price {
			return nil, model.ErrInsufficientStars
		}

		player.Stars -= price
		player.GrantSkin(skin)
		return players, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("skin purchased",
		slog.String("username", username),
		slog.Int("skin", int(skin)),
		slog.Int("price", price),
	)
	return nil
}

// SelectSkin equips an owned skin. The equipped skin is always a member
// of the owned set.
func (s *Service) SelectSkin(ctx context.Context, username string, skin model.SkinID) error {
	return s.guard.Update(ctx, func(players []*model.Player) ([]*model.Player, error) {
		player, err := storage.FindByUsername(players, username)
		if err != nil {
			return nil, err
		}
		if !player.OwnsSkin(skin) {
			return nil, model.ErrSkinNotOwned
		}

		player.CurrentSkin = skin
		return players, nil
	})
}

// RecordScore persists a new best score. The best score is monotonically
// non-decreasing: a candidate that does not beat it yields
// model.ErrNoImprovement and no write.
func (s *Service) RecordScore(ctx context.Context, username string, score int) error {
	if score < 0 {
		return model.ErrInvalidAmount
	}

	return s.guard.Update(ctx, func(players []*model.Player) ([]*model.Player, error) {
		player, err := storage.FindByUsername(players, username)
		if err != nil {
			return nil, err
		}
		if score <= player.BestScore {
			return nil, model.ErrNoImprovement
		}

		player.BestScore = score
		return players, nil
	})
}

// Credit adds stars to a balance. The amount must be non-negative; the
// balance can never go negative.
func (s *Service) Credit(ctx context.Context, username string, amount int) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}

	return s.guard.Update(ctx, func(players []*model.Player) ([]*model.Player, error) {
		player, err := storage.FindByUsername(players, username)
		if err != nil {
			return nil, err
		}

		player.Stars += amount
		return players, nil
	})
}

// Leaderboard returns every player ranked by best score, descending.
// The sort is stable: ties keep their original store order.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	players, err := s.guard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(players))
	for i, p := range players {
		entries[i] = LeaderboardEntry{
			Username:  p.Username,
			BestScore: p.BestScore,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BestScore > entries[j].BestScore
	})

	return entries, nil
}

// OwnsSkin reports whether a player has unlocked a skin
func (s *Service) OwnsSkin(ctx context.Context, username string, skin model.SkinID) (bool, error) {
	player, err := s.find(ctx, username)
	if err != nil {
		return false, err
	}
	return player.OwnsSkin(skin), nil
}

// Balance returns a player's star balance
func (s *Service) Balance(ctx context.Context, username string) (int, error) {
	player, err := s.find(ctx, username)
	if err != nil {
		return 0, err
	}
	return player.Stars, nil
}

// BestScore returns a player's best score
func (s *Service) BestScore(ctx context.Context, username string) (int, error) {
	player, err := s.find(ctx, username)
	if err != nil {
		return 0, err
	}
	return player.BestScore, nil
}

// CurrentSkin returns the skin a player has equipped
func (s *Service) CurrentSkin(ctx context.Context, username string) (model.SkinID, error) {
	player, err := s.find(ctx, username)
	if err != nil {
		return 0, err
	}
	return player.CurrentSkin, nil
}

// Catalog returns the skin price table
func (s *Service) Catalog(ctx context.Context) (model.SkinCatalog, error) {
	return s.guard.Catalog(ctx)
}

func (s *Service) find(ctx context.Context, username string) (*model.Player, error) {
	players, err := s.guard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return storage.FindByUsername(players, username)
}

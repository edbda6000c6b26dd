package account

import (
	"context"
	"log/slog"

	"github.com/zerog-odyssey/backend/internal/dependencies/clock"
	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/services/credential"
	"github.com/zerog-odyssey/backend/internal/services/session"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// Auth is the result of a successful registration or login
type Auth struct {
	Username string
	Token    string
}

// Service handles registration, login and record lookup
type Service struct {
	guard    *storage.Guard
	sessions *session.Issuer
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new account service
func New(guard *storage.Guard, sessions *session.Issuer, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		guard:    guard,
		sessions: sessions,
		clock:    clk,
		logger:   logger,
	}
}

// Register validates the credentials, creates the record and issues a
// session token.
//
// The conflict check and the id allocation run against the same locked
// snapshot, so interleaved registrations can neither share a username nor
// collide on an id.
func (s *Service) Register(ctx context.Context, username, password, birthdate string) (*Auth, error) {
	if !credential.ValidPassword(password) {
		return nil, model.ErrInvalidPassword
	}
	if !credential.ValidBirthdate(birthdate) {
		return nil, model.ErrInvalidBirthdate
	}

	// Hash outside the critical section; bcrypt is deliberately slow and
	// the lock must only cover the in-memory transaction plus the write
	hash, err := credential.Hash(password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	err = s.guard.Update(ctx, func(players []*model.Player) ([]*model.Player, error) {
		if _, err := storage.FindByUsername(players, username); err == nil {
			return nil, model.ErrUsernameTaken
		}

		player := model.NewPlayer(nextID(players), username, hash, birthdate, now)
		return append(players, player), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("username", username))

	return s.issue(username)
}

// Login verifies the credentials and issues a session token. A missing
// record and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*Auth, error) {
	players, err := s.guard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	player, err := storage.FindByUsername(players, username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if !credential.Verify(password, player.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	return s.issue(username)
}

// FindByUsername looks up a single record
func (s *Service) FindByUsername(ctx context.Context, username string) (*model.Player, error) {
	players, err := s.guard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return storage.FindByUsername(players, username)
}

// Players returns the full collection in store order
func (s *Service) Players(ctx context.Context) ([]*model.Player, error) {
	return s.guard.Snapshot(ctx)
}

func (s *Service) issue(username string) (*Auth, error) {
	token, err := s.sessions.Issue(username)
	if err != nil {
		return nil, err
	}
	return &Auth{Username: username, Token: token}, nil
}

// nextID allocates max(existing ids)+1, or 1 for an empty collection.
// Looking at the maximum rather than the last element keeps ids unique
// even if a record was ever removed by hand.
func nextID(players []*model.Player) model.PlayerID {
	var maxID model.PlayerID
	for _, p := range players {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

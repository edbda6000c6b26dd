package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zerog-odyssey/backend/internal/dependencies/clock"
	"github.com/zerog-odyssey/backend/internal/model"
)

// Sessions are stateless: there is no server-side session table. A token's
// validity is fully determined by its signature and expiry, so rotating
// the signing secret invalidates every outstanding token.

// Claims is the claim set carried by a session token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Config holds configuration for the token issuer
type Config struct {
	// Secret signs and verifies tokens. Required.
	Secret string
	// Lifetime is how long an issued token stays valid
	Lifetime time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Lifetime: 24 * time.Hour,
	}
}

// Issuer signs and verifies time-limited session tokens
type Issuer struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
}

// New creates a token issuer
func New(cfg Config, clk clock.Clock) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session: signing secret is required")
	}
	if cfg.Lifetime == 0 {
		cfg.Lifetime = DefaultConfig().Lifetime
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		lifetime: cfg.Lifetime,
		clock:    clk,
	}, nil
}

// Issue signs a token asserting the username claim
func (i *Issuer) Issue(username string) (string, error) {
	now := i.clock.Now()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the username claim.
// Expired or tampered tokens yield ErrInvalidToken, never a partial
// identity.
func (i *Issuer) Verify(tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Username == "" {
		return "", model.ErrInvalidToken
	}

	return claims.Username, nil
}

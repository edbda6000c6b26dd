package storage

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zerog-odyssey/backend/internal/model"
)

// DefaultPlayers returns the seed collection served when no player
// document exists yet. It contains the bootstrap admin account with the
// default skin owned and equipped. The hash is generated here rather
// than checked in so the seed password never appears alongside a
// reusable hash.
func DefaultPlayers() []*model.Player {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost or oversized input
		panic(err)
	}

	admin := model.NewPlayer(1, "admin", string(hash), "1990-01-01", time.Time{})
	return []*model.Player{admin}
}

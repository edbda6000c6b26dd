package model

import (
	"slices"
	"time"
)

// PlayerID uniquely identifies a player account. IDs are assigned
// monotonically and never reused within a store's lifetime.
type PlayerID int

// Player is one account record in the store. Records are created at
// registration, mutated in place by economy transactions, and never
// deleted in normal operation.
type Player struct {
	ID           PlayerID  `json:"id"`
	Username     string    `json:"username"` // login username (immutable, unique)
	PasswordHash string    `json:"password_hash"`
	Birthdate    string    `json:"birthdate"` // YYYY-MM-DD
	Stars        int       `json:"stars"`
	BestScore    int       `json:"best_score"`
	OwnedSkins   []SkinID  `json:"owned_skins"`
	CurrentSkin  SkinID    `json:"current_skin"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPlayer creates a fresh account record. Every new player owns and
// equips the default skin and starts with zero stars and score.
func NewPlayer(id PlayerID, username, passwordHash, birthdate string, now time.Time) *Player {
	return &Player{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Birthdate:    birthdate,
		OwnedSkins:   []SkinID{DefaultSkin},
		CurrentSkin:  DefaultSkin,
		CreatedAt:    now,
	}
}

// OwnsSkin reports whether the player has unlocked the given skin
func (p *Player) OwnsSkin(id SkinID) bool {
	return slices.Contains(p.OwnedSkins, id)
}

// GrantSkin adds a skin to the player's owned set. Granting an
// already-owned skin is a no-op.
func (p *Player) GrantSkin(id SkinID) {
	if !p.OwnsSkin(id) {
		p.OwnedSkins = append(p.OwnedSkins, id)
	}
}

// Clone returns a deep copy of the record so callers can mutate it
// without aliasing the store's snapshot
func (p *Player) Clone() *Player {
	cp := *p
	cp.OwnedSkins = slices.Clone(p.OwnedSkins)
	return &cp
}

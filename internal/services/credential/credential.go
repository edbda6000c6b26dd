package credential

import (
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for password hashing. Raising it only
// affects newly created hashes; existing hashes keep the cost they were
// generated with.
const Cost = 10

// Birthdates must fall within an accepted historical range
const (
	minBirthYear = 1900
	maxBirthYear = 2023
)

// Hash derives a salted one-way hash from a cleartext password
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidPassword reports whether a password meets the strength rules:
// at least 8 characters, at least one uppercase letter, at least one
// digit. All other characters are unrestricted.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// ValidBirthdate reports whether a birthdate is a parsable YYYY-MM-DD
// date with its year in the accepted range
func ValidBirthdate(birthdate string) bool {
	date, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return false
	}
	year := date.Year()
	return year >= minBirthYear && year <= maxBirthYear
}

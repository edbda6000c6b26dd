package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrUsernameTaken  = errors.New("username already taken")

	// Credential and session errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters with an uppercase letter and a digit")
	ErrInvalidBirthdate   = errors.New("birthdate must be a valid date between 1900 and 2023")

	// Economy errors
	ErrSkinNotFound      = errors.New("skin not found")
	ErrSkinAlreadyOwned  = errors.New("skin already owned")
	ErrSkinNotOwned      = errors.New("skin not owned")
	ErrInsufficientStars = errors.New("insufficient stars")
	ErrInvalidAmount     = errors.New("amount must be a non-negative integer")
	ErrNoImprovement     = errors.New("score does not improve the best score")
)

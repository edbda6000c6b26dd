package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zerog-odyssey/backend/internal/model"
	"github.com/zerog-odyssey/backend/internal/storage"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeInvalidBirthdate   = "INVALID_BIRTHDATE"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeSkinNotFound       = "SKIN_NOT_FOUND"
	CodeSkinAlreadyOwned   = "SKIN_ALREADY_OWNED"
	CodeSkinNotOwned       = "SKIN_NOT_OWNED"
	CodeInsufficientStars  = "INSUFFICIENT_STARS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation rejections
	case errors.Is(err, model.ErrInvalidPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPassword, err.Error()}}
	case errors.Is(err, model.ErrInvalidBirthdate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBirthdate, err.Error()}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, err.Error()}}

	// Authentication failures; no detail about which credential was wrong
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, model.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	// Business-rule rejections
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeUsernameTaken, "Username already taken"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSkinNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSkinNotFound, "Skin not found"}}
	case errors.Is(err, model.ErrSkinAlreadyOwned):
		return &httpError{http.StatusConflict, APIError{CodeSkinAlreadyOwned, "Skin already owned"}}
	case errors.Is(err, model.ErrSkinNotOwned):
		return &httpError{http.StatusConflict, APIError{CodeSkinNotOwned, "Skin not owned"}}
	case errors.Is(err, model.ErrInsufficientStars):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientStars, "Not enough stars"}}

	// Infrastructure faults
	case errors.Is(err, storage.ErrCorruptStore):
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

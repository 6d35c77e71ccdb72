package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohamed566-11/sqrew/internal/model"
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
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeRoundNotFound        = "ROUND_NOT_FOUND"
	CodeRosterFull           = "ROSTER_FULL"
	CodeInsufficientPlayers  = "INSUFFICIENT_PLAYERS"
	CodeGameInProgress       = "GAME_IN_PROGRESS"
	CodeNoGameInProgress     = "NO_GAME_IN_PROGRESS"
	CodeIncompleteScores     = "INCOMPLETE_SCORES"
	CodeUnknownPlayer        = "UNKNOWN_PLAYER"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
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
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "name is required"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrRosterFull):
		return &httpError{http.StatusConflict, APIError{CodeRosterFull, "Roster is full"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "Game is in progress"}}
	case errors.Is(err, model.ErrNoGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeNoGameInProgress, "No game in progress"}}
	case errors.Is(err, model.ErrIncompleteScores):
		return &httpError{http.StatusBadRequest, APIError{CodeIncompleteScores, err.Error()}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPlayer, err.Error()}}
	case errors.Is(err, model.ErrConfirmationRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeConfirmationRequired, "This action must be confirmed"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewRouteNotFoundError is returned for paths no route matches
func NewRouteNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "No such endpoint"}}
}

// NewMethodNotAllowedError is returned when the path exists but not for the method
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

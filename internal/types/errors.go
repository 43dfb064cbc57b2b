package types

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParameter      = errors.New("missing required parameter")
	ErrConfiguration         = errors.New("configuration error")
	ErrUpstream              = errors.New("upstream service error")
	ErrSessionNotFound       = errors.New("chat session not found")
	ErrConversationEnded     = errors.New("conversation has ended")
	ErrRecommendationPending = errors.New("recommendation already in progress")
	ErrNoRecommendation      = errors.New("session has no recommendation yet")
	ErrBrochureNotFound      = errors.New("brochure file not found")
)

// MissingParameterError names the request field that was absent.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Field)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// Response represents a generic API response for success or error messages.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Operation successful"`
	Error   string `json:"error,omitempty" example:"Resource not found"`
}

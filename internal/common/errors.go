// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Backend errors.
	ErrInvalidPayload = errors.New("invalid response payload")

	// Input errors.
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidDate     = errors.New("invalid date")

	// Preference errors.
	ErrNotFound     = errors.New("not found")
	ErrUnknownTheme = errors.New("unknown theme")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// APIError is a non-2xx answer from the exchange backend.
type APIError struct {
	// ServerMessage is the "error" field of the body, if the backend sent one.
	ServerMessage string
	Body          string
	StatusCode    int
}

func (e *APIError) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("exchange API error (status %d): %s", e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("exchange API error (status %d): %s", e.StatusCode, e.Body)
}

// ServerMessage returns the backend-provided error text carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.ServerMessage != "" {
		return apiErr.ServerMessage, true
	}
	return "", false
}

// MessageOr returns the backend-provided error text when present, otherwise fallback.
func MessageOr(err error, fallback string) string {
	if msg, ok := ServerMessage(err); ok {
		return msg
	}
	return fallback
}

package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no mood entry exists with the requested id.
	ErrNotFound = errors.New("mood entry not found")
	// ErrNotAuthorized means the entry exists but belongs to another user.
	ErrNotAuthorized = errors.New("user not authorized")
)

// ValidationError reports malformed input, naming the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ProviderError wraps a failed call to an external content provider.
// The wrapped cause is for logs only and never reaches the client.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidAPIKey = New("invalid API key format")
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")

	// Input errors
	ErrInvalidInput        = New("invalid input")
	ErrEmptyCorpus         = New("corpus has no transcript text")
	ErrEmptyQuery          = New("query is empty")
	ErrUnknownVideo        = New("video not found")
	ErrUnknownPlaylist     = New("playlist not found")
	ErrUnknownConversation = New("conversation not found")
	ErrNoDigest            = New("playlist has no digest yet")

	// Provider errors
	ErrProviderNotFound = New("provider not found")
	ErrProviderFailure  = New("provider call failed")
	ErrProviderTimeout  = New("provider timeout")
	ErrEmptyCompletion  = New("provider returned empty completion")
	ErrEmptyEmbedding   = New("provider returned no embeddings")

	// Storage errors
	ErrStoreUnavailable   = New("vector store unavailable")
	ErrDatabaseConnection = New("database connection failed")
	ErrQueryFailed        = New("query failed")
	ErrInsertFailed       = New("insert failed")

	// Cache errors
	ErrCacheMiss = New("cache miss")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Helper functions for common patterns

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return Newf("%s not found: %s", itemType, identifier)
}

// OutOfRange returns an error for values outside acceptable range
func OutOfRange(field string, min, max interface{}) error {
	return Newf("%s out of range (must be between %v and %v)", field, min, max)
}

// Timeout returns a timeout error
func Timeout(operation string, duration string) error {
	return Newf("%s timeout after %s", operation, duration)
}

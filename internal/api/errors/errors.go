// Package errors defines the wire format of API errors and the mapping from
// domain errors to HTTP status codes.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "yt-digest/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// FromDomain translates domain errors into API errors. Unknown errors come
// back as internal so no wrapped detail leaks to clients.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case stderrors.Is(err, apperrors.ErrUnknownPlaylist),
		stderrors.Is(err, apperrors.ErrUnknownVideo),
		stderrors.Is(err, apperrors.ErrUnknownConversation),
		stderrors.Is(err, apperrors.ErrNoDigest):
		return &APIError{Kind: KindNotFound, Message: err.Error()}

	case stderrors.Is(err, apperrors.ErrInvalidInput),
		stderrors.Is(err, apperrors.ErrEmptyQuery),
		stderrors.Is(err, apperrors.ErrEmptyCorpus):
		return &APIError{Kind: KindValidation, Message: err.Error()}

	case stderrors.Is(err, apperrors.ErrProviderFailure),
		stderrors.Is(err, apperrors.ErrProviderTimeout),
		stderrors.Is(err, apperrors.ErrStoreUnavailable),
		stderrors.Is(err, apperrors.ErrDatabaseConnection):
		return &APIError{Kind: KindServiceUnavailable, Message: err.Error()}

	default:
		return &APIError{Kind: KindInternal, Message: "Internal server error"}
	}
}

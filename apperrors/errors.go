// Package apperrors defines the error taxonomy raised by the service layer
// and its mapping to HTTP status codes. Services return these; the HTTP
// layer maps them once, in the respond helper.
package apperrors

import (
	"errors"
	"net/http"
)

// ValidationError reports missing or malformed input.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// AuthError reports failed authentication. The message is deliberately
// generic so callers cannot distinguish an unknown user from a bad password.
type AuthError struct{ Message string }

func (e *AuthError) Error() string { return e.Message }

// ForbiddenError reports an authenticated caller lacking permission.
type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

// NotFoundError reports a missing resource.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

func NewValidation(msg string) error { return &ValidationError{Message: msg} }
func NewAuth(msg string) error       { return &AuthError{Message: msg} }
func NewForbidden(msg string) error  { return &ForbiddenError{Message: msg} }
func NewNotFound(msg string) error   { return &NotFoundError{Message: msg} }

// StatusCode maps an error to its HTTP status. Unrecognized errors are
// internal failures and surface their message with a 500.
func StatusCode(err error) int {
	var (
		validation *ValidationError
		auth       *AuthError
		forbidden  *ForbiddenError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

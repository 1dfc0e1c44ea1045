// Package apperr defines the error taxonomy shared by services. Handlers are
// the only place these are translated into HTTP responses.
package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Services wrap them with context via Validation/NotFound/etc.
// and handlers match with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrAuth            = errors.New("authentication failed")
	ErrNotFound        = errors.New("not found")
	ErrStorage         = errors.New("storage failure")
	ErrUploadRejected  = errors.New("upload rejected")
	ErrUploadsDisabled = errors.New("uploads disabled in this environment")
)

// Validation returns a validation error with a user-facing message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a not-found error naming the missing resource.
func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// Auth returns an authentication error with a user-facing message.
func Auth(message string) error {
	return fmt.Errorf("%w: %s", ErrAuth, message)
}

// Storage wraps a backend failure. The wrapped error is kept for logging but
// must not reach the client.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// UploadRejected returns an upload rejection with the concrete cause.
func UploadRejected(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUploadRejected, fmt.Sprintf(format, args...))
}

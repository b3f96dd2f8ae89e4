package api

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a detail fetch targets a record the upstream
// service does not know. Match with errors.Is.
var ErrNotFound = errors.New("not found")

// AuthError is a server-side rejection of a login or registration payload.
// Message carries the server-provided text when the response body had one,
// otherwise a generic fallback; it is shown to the user verbatim.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

func wrapTransport(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks responses that rejected the session credentials.
var ErrUnauthorized = errors.New("session rejected by server")

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError is a response whose envelope reported success=false.
type APIError struct {
	Status  int
	Message string
	// Authenticated is set when the request carried a bearer token.
	Authenticated bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("error: %s", e.Message)
	}
	return fmt.Sprintf("API error (%d)", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Authenticated && isAuthFailure(e.Status) {
		return ErrUnauthorized
	}
	return nil
}

// TransportError covers network failures and bodies that are not JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the message the backend attached to err, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks a 401 from any endpoint. It is handled globally by
// the session store, never surfaced as a form error.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the server. Message carries the
// server's human-readable explanation when one was provided.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// RequestError means no response was received at all.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ErrorMessage derives a user-facing message from an error: the server's
// message when present, otherwise the given fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

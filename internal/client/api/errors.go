package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps every transport failure: refused connections,
	// timeouts, DNS errors. The server never answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches StatusErrors with 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenMissing is returned when a login or registration succeeded
	// at the HTTP level but the body carried no token.
	ErrTokenMissing = errors.New("token not found in response")

	ErrUnexpectedPayload = errors.New("unexpected response payload")
)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server-provided "message" (or "error") field, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && isAuthStatus(e.StatusCode)
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// TokenMissingError is a 2xx login/registration answer without a token.
type TokenMissingError struct {
	Message string
}

func (e *TokenMissingError) Error() string { return ErrTokenMissing.Error() }

func (e *TokenMissingError) Unwrap() error { return ErrTokenMissing }

// ServerMessage extracts the server's explanation from err, if there is one.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	var tm *TokenMissingError
	if errors.As(err, &tm) {
		return tm.Message
	}
	return ""
}

package common

import "errors"

var (
	// Auth errors (missing, invalid or malformed token).
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Validation errors raised before anything is sent to the server.
	ErrorValidation = errors.New("validation error")

	ErrorNotFound = errors.New("not found")
)

// Package common defines shared constants and sentinel errors used across
// the community platform client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration wizard errors.
	ErrNoPendingRegistration = errors.New("no pending registration found, please register first")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// ErrRequestTimedOut carries the exact user-facing message shown when a
	// bounded call does not resolve in time.
	ErrRequestTimedOut = errors.New("Request timed out. Please check your internet connection and try again.")
)

// Package common defines shared sentinel errors used across the client and
// server layers of userdir. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. Deliberately generic: the login flow must not reveal
	// which of the two fields was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Package common defines shared constants and sentinel errors used across
// the zmng client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport / auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrNotInitialized signals a programming-contract violation: an active
	// client was requested before one was registered.
	ErrNotInitialized = errors.New("client not initialized")
)

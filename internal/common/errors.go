// Package common defines shared constants and sentinel errors used across
// client layers of CodeShack. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNoSession      = errors.New("no active session")
	ErrCorruptSession = errors.New("corrupt session data")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

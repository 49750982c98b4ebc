// Package common defines shared constants and sentinel errors used across
// client and server layers of the memo application. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (missing or malformed input).
	ErrorValidation = errors.New("validation error")

	// Upstream provider errors (GitHub, AI provider).
	ErrorUpstream = errors.New("upstream error")

	// Configuration errors (a required secret is not set).
	ErrorNotConfigured = errors.New("not configured")
)

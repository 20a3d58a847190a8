package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates a search was requested with no query text.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrUnknownMode indicates an unrecognised search mode.
	ErrUnknownMode = errors.New("unknown search mode")

	// ErrMissingAPIKey indicates the search provider API key is not configured.
	ErrMissingAPIKey = errors.New("search API key is not configured")

	// ErrRateLimited indicates the provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

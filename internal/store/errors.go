package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned when no credential token is stored.
	ErrTokenNotFound = errors.New("token not found")

	// ErrEmptyToken is returned by Save for blank tokens.
	ErrEmptyToken = errors.New("empty token")

	// ErrUnexpectedDB wraps driver errors that carry no domain meaning.
	ErrUnexpectedDB = errors.New("unexpected DB error")
)

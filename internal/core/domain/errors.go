package domain

import (
	"errors"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Conversation Errors.

	// ErrEmptyInput indicates a submission that is blank after trimming.
	ErrEmptyInput = errors.New("empty input")

	// ErrReplyPending indicates a submission while the assistant is still replying.
	// Only one reply may be in flight per session.
	ErrReplyPending = errors.New("reply pending")

	// ErrSessionClosed indicates the session has been discarded.
	ErrSessionClosed = errors.New("session closed")

	// Work Order Errors.

	// ErrAlreadyCompleted indicates the work order is already resolved.
	ErrAlreadyCompleted = errors.New("work order already completed")

	// ErrBackendUnavailable indicates no remote work order backend is configured.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrRateLimited indicates the backend rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrContactNotConfigured indicates the supervisor contact is missing.
	ErrContactNotConfigured = errors.New("supervisor contact not configured")
)

// RetryAfter returns the wait a backend asked for in err, if any.
// Errors carry the hint by implementing RetryDelay() time.Duration.
func RetryAfter(err error) (time.Duration, bool) {
	var hint interface{ RetryDelay() time.Duration }
	if errors.As(err, &hint) {
		return hint.RetryDelay(), true
	}
	return 0, false
}

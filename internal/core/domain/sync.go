package domain

import "time"

// PendingSync is a local work order change the backend has not accepted yet.
type PendingSync struct {
	// TaskID identifies the work order. One entry per order.
	TaskID string

	// Attempts counts push attempts, including the one that queued it.
	Attempts int

	// LastError is the most recent failure reason.
	LastError string

	// QueuedAt is when the change was first queued.
	QueuedAt time.Time

	// LastAttempt is when the change was last pushed.
	LastAttempt time.Time
}

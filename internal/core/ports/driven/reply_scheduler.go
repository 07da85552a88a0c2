package driven

import "time"

// ReplyScheduler runs a task after a delay without blocking the caller.
type ReplyScheduler interface {
	// Schedule arranges for task to run once after delay.
	// The returned cancel function prevents the task from starting if it
	// has not started yet; calling it more than once is safe.
	Schedule(delay time.Duration, task func()) (cancel func())
}

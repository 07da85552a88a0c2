package driven

import (
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// Metrics records operational counters for the assistant and sync paths.
type Metrics interface {
	// IntentClassified counts a classified question.
	IntentClassified(intent domain.Intent)

	// ReplyDelivered records the time from submission to reply append.
	ReplyDelivered(latency time.Duration)

	// SyncAttempted counts a backend push and its outcome.
	SyncAttempted(success bool)
}

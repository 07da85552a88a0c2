package driven

import (
	"context"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// WorkOrderFeed is an external source of dispatched work orders.
type WorkOrderFeed interface {
	// Load reads the current batch of work orders.
	Load(ctx context.Context) ([]domain.WorkOrder, error)

	// Watch calls onChange with a fresh batch whenever the feed changes.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func([]domain.WorkOrder)) error
}

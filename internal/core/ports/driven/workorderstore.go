package driven

import (
	"context"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// WorkOrderStore persists work orders.
// The same port is implemented by the local store and the remote backend.
type WorkOrderStore interface {
	// Get retrieves a work order by task ID.
	// Returns domain.ErrNotFound if the order does not exist.
	Get(ctx context.Context, taskID string) (*domain.WorkOrder, error)

	// List returns all work orders.
	List(ctx context.Context) ([]domain.WorkOrder, error)

	// Save creates or replaces a work order. A returned error is the
	// failure reason; the caller decides whether to keep the change locally.
	Save(ctx context.Context, order domain.WorkOrder) error
}

// SyncOutbox queues local work order changes for delivery to the backend.
type SyncOutbox interface {
	// Enqueue records a pending change. An existing entry for the same
	// task ID is replaced, keeping its original QueuedAt.
	Enqueue(ctx context.Context, pending domain.PendingSync) error

	// List returns all pending changes ordered by QueuedAt.
	List(ctx context.Context) ([]domain.PendingSync, error)

	// Remove deletes the entry for a task ID. Missing entries are not an error.
	Remove(ctx context.Context, taskID string) error
}

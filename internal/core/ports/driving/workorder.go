package driving

import (
	"context"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// WorkOrderService manages the technician's work orders.
type WorkOrderService interface {
	// List returns all work orders.
	List(ctx context.Context) ([]domain.WorkOrder, error)

	// Get returns a work order by task ID.
	Get(ctx context.Context, taskID string) (*domain.WorkOrder, error)

	// Resolve marks a work order completed locally and pushes it to the backend.
	// A failed push is reported in the result, not as an error.
	Resolve(ctx context.Context, taskID string) (*domain.ResolveResult, error)

	// PriorityQueue returns open work orders grouped by priority.
	PriorityQueue(ctx context.Context) (*domain.PriorityQueue, error)

	// Briefing returns the condensed playbook section for a work order.
	Briefing(ctx context.Context, taskID string) (*domain.Briefing, error)

	// SupervisorContact returns the escalation contact URI.
	SupervisorContact() (string, error)

	// Import upserts dispatched work orders into the local store.
	Import(ctx context.Context, orders []domain.WorkOrder) (int, error)

	// Pull copies the backend's work orders into the local store.
	Pull(ctx context.Context) (int, error)
}

// SyncService re-pushes locally queued work order changes.
type SyncService interface {
	// RetryPending makes one pass over the outbox and returns how many
	// changes the backend accepted.
	RetryPending(ctx context.Context) (int, error)

	// Pending returns the queued changes.
	Pending(ctx context.Context) ([]domain.PendingSync, error)
}

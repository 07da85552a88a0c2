package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// workOrderStore implements driven.WorkOrderStore.
// The full order is kept as JSON; the other columns are for querying.
type workOrderStore struct {
	store *Store
}

var _ driven.WorkOrderStore = (*workOrderStore)(nil)

// Get retrieves a work order by task ID.
func (s *workOrderStore) Get(ctx context.Context, taskID string) (*domain.WorkOrder, error) {
	var payload string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT payload FROM work_orders WHERE task_id = ?", taskID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying work order: %w", err)
	}

	return decodeWorkOrder(payload)
}

// List returns all work orders ordered by task ID.
func (s *workOrderStore) List(ctx context.Context) ([]domain.WorkOrder, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT payload FROM work_orders ORDER BY task_id")
	if err != nil {
		return nil, fmt.Errorf("listing work orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.WorkOrder //nolint:prealloc // size unknown from query
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning work order: %w", err)
		}
		wo, err := decodeWorkOrder(payload)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *wo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work orders: %w", err)
	}

	return orders, nil
}

// Save creates or replaces a work order.
func (s *workOrderStore) Save(ctx context.Context, order domain.WorkOrder) error {
	if order.TaskID == "" {
		return domain.ErrInvalidInput
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshalling work order: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO work_orders
			(task_id, status, priority, issue_document_id, due_date, updated_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET
			status = excluded.status,
			priority = excluded.priority,
			issue_document_id = excluded.issue_document_id,
			due_date = excluded.due_date,
			updated_at = excluded.updated_at,
			payload = excluded.payload
	`, order.TaskID, string(order.Status), string(order.Priority), order.IssueDocumentID,
		toNanos(order.DueDate), toNanos(order.UpdatedAt), string(payload))
	if err != nil {
		return fmt.Errorf("saving work order: %w", err)
	}
	return nil
}

func decodeWorkOrder(payload string) (*domain.WorkOrder, error) {
	var wo domain.WorkOrder
	if err := json.Unmarshal([]byte(payload), &wo); err != nil {
		return nil, fmt.Errorf("unmarshalling work order: %w", err)
	}
	return &wo, nil
}

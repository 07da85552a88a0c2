package sqlite

import (
	"context"
	"fmt"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// syncOutbox implements driven.SyncOutbox.
type syncOutbox struct {
	store *Store
}

var _ driven.SyncOutbox = (*syncOutbox)(nil)

// Enqueue records a pending change. queued_at is only set on insert.
func (s *syncOutbox) Enqueue(ctx context.Context, p domain.PendingSync) error {
	if p.TaskID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO pending_sync (task_id, attempts, last_error, queued_at, last_attempt)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET
			attempts = excluded.attempts,
			last_error = excluded.last_error,
			last_attempt = excluded.last_attempt
	`, p.TaskID, p.Attempts, p.LastError, toNanos(p.QueuedAt), toNanos(p.LastAttempt))
	if err != nil {
		return fmt.Errorf("enqueueing pending sync: %w", err)
	}
	return nil
}

// List returns pending changes, oldest first.
func (s *syncOutbox) List(ctx context.Context) ([]domain.PendingSync, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT task_id, attempts, last_error, queued_at, last_attempt
		FROM pending_sync ORDER BY queued_at, task_id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing pending sync: %w", err)
	}
	defer rows.Close()

	var pending []domain.PendingSync //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.PendingSync
		var queuedAt, lastAttempt int64
		if err := rows.Scan(&p.TaskID, &p.Attempts, &p.LastError, &queuedAt, &lastAttempt); err != nil {
			return nil, fmt.Errorf("scanning pending sync: %w", err)
		}
		p.QueuedAt = fromNanos(queuedAt)
		p.LastAttempt = fromNanos(lastAttempt)
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending sync: %w", err)
	}

	return pending, nil
}

// Remove deletes the entry for taskID.
func (s *syncOutbox) Remove(ctx context.Context, taskID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM pending_sync WHERE task_id = ?", taskID)
	if err != nil {
		return fmt.Errorf("removing pending sync: %w", err)
	}
	return nil
}

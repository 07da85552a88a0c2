package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// Ensure SyncOutbox implements the interface.
var _ driven.SyncOutbox = (*SyncOutbox)(nil)

// SyncOutbox is an in-memory implementation of driven.SyncOutbox.
type SyncOutbox struct {
	mu      sync.RWMutex
	pending map[string]domain.PendingSync
}

// NewSyncOutbox creates an empty outbox.
func NewSyncOutbox() *SyncOutbox {
	return &SyncOutbox{
		pending: make(map[string]domain.PendingSync),
	}
}

// Enqueue records a pending change, keeping the QueuedAt of an existing entry.
func (s *SyncOutbox) Enqueue(_ context.Context, p domain.PendingSync) error {
	if p.TaskID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.pending[p.TaskID]; ok {
		p.QueuedAt = existing.QueuedAt
	}
	s.pending[p.TaskID] = p
	return nil
}

// List returns pending changes, oldest first.
func (s *SyncOutbox) List(_ context.Context) ([]domain.PendingSync, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.PendingSync, 0, len(s.pending))
	for _, p := range s.pending {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].QueuedAt.Equal(result[j].QueuedAt) {
			return result[i].TaskID < result[j].TaskID
		}
		return result[i].QueuedAt.Before(result[j].QueuedAt)
	})
	return result, nil
}

// Remove deletes the entry for taskID.
func (s *SyncOutbox) Remove(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, taskID)
	return nil
}

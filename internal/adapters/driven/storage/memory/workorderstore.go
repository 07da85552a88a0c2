package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// Ensure WorkOrderStore implements the interface.
var _ driven.WorkOrderStore = (*WorkOrderStore)(nil)

// WorkOrderStore is an in-memory implementation of driven.WorkOrderStore.
type WorkOrderStore struct {
	mu     sync.RWMutex
	orders map[string]domain.WorkOrder
}

// NewWorkOrderStore creates a store seeded with orders.
func NewWorkOrderStore(orders ...domain.WorkOrder) *WorkOrderStore {
	s := &WorkOrderStore{
		orders: make(map[string]domain.WorkOrder, len(orders)),
	}
	for i := range orders {
		s.orders[orders[i].TaskID] = cloneOrder(orders[i])
	}
	return s
}

// Get retrieves a work order by task ID.
func (s *WorkOrderStore) Get(_ context.Context, taskID string) (*domain.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wo, ok := s.orders[taskID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneOrder(wo)
	return &out, nil
}

// List returns all work orders ordered by task ID.
func (s *WorkOrderStore) List(_ context.Context) ([]domain.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.WorkOrder, 0, len(s.orders))
	for _, wo := range s.orders {
		result = append(result, cloneOrder(wo))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TaskID < result[j].TaskID
	})
	return result, nil
}

// Save creates or replaces a work order.
func (s *WorkOrderStore) Save(_ context.Context, order domain.WorkOrder) error {
	if order.TaskID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.TaskID] = cloneOrder(order)
	return nil
}

func cloneOrder(wo domain.WorkOrder) domain.WorkOrder {
	wo.SystemsAffected = append([]string(nil), wo.SystemsAffected...)
	wo.RequiredTools = append([]string(nil), wo.RequiredTools...)
	wo.SkillsNeeded = append([]string(nil), wo.SkillsNeeded...)
	return wo
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure WorkOrderService implements the interface.
var _ driving.WorkOrderService = (*WorkOrderService)(nil)

// briefingActions is how many immediate actions a briefing shows.
const briefingActions = 3

// WorkOrderService manages work orders across the local store and the backend.
type WorkOrderService struct {
	local   driven.WorkOrderStore
	remote  driven.WorkOrderStore
	outbox  driven.SyncOutbox
	catalog driving.PlaybookCatalog
	contact string
	metrics driven.Metrics
	now     func() time.Time
}

// NewWorkOrderService creates a work order service.
// remote may be nil, in which case every change stays local and is queued.
func NewWorkOrderService(
	local driven.WorkOrderStore,
	remote driven.WorkOrderStore,
	outbox driven.SyncOutbox,
	catalog driving.PlaybookCatalog,
) *WorkOrderService {
	return &WorkOrderService{
		local:   local,
		remote:  remote,
		outbox:  outbox,
		catalog: catalog,
		contact: domain.DefaultSupervisorContact,
		now:     time.Now,
	}
}

// SetSupervisorContact overrides the escalation contact URI.
func (s *WorkOrderService) SetSupervisorContact(contact string) {
	s.contact = contact
}

// SetMetrics sets the optional metrics recorder.
func (s *WorkOrderService) SetMetrics(m driven.Metrics) {
	s.metrics = m
}

// List returns all local work orders ordered by task ID.
func (s *WorkOrderService) List(ctx context.Context) ([]domain.WorkOrder, error) {
	orders, err := s.local.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing work orders: %w", err)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].TaskID < orders[j].TaskID
	})
	return orders, nil
}

// Get returns a work order by task ID.
func (s *WorkOrderService) Get(ctx context.Context, taskID string) (*domain.WorkOrder, error) {
	return s.local.Get(ctx, taskID)
}

// Resolve marks a work order completed. The local change always sticks;
// a failed backend push is queued for retry and reported in the result.
func (s *WorkOrderService) Resolve(ctx context.Context, taskID string) (*domain.ResolveResult, error) {
	logger.Section("Resolve Work Order")

	wo, err := s.local.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading work order %s: %w", taskID, err)
	}
	if wo.IsCompleted() {
		return nil, fmt.Errorf("resolving %s: %w", taskID, domain.ErrAlreadyCompleted)
	}

	updated := *wo
	updated.Status = domain.StatusCompleted
	updated.UpdatedAt = s.now().UTC()

	if err := s.local.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving work order %s: %w", taskID, err)
	}
	logger.Debug("Work order %s marked completed locally", taskID)

	result := &domain.ResolveResult{Order: updated}

	syncErr := s.push(ctx, updated)
	if syncErr == nil {
		result.Synced = true
		logger.Info("Work order %s synced to backend", taskID)
		return result, nil
	}

	result.SyncErr = syncErr
	logger.Warn("Work order %s kept locally: %v", taskID, syncErr)

	pending := domain.PendingSync{
		TaskID:      taskID,
		Attempts:    1,
		LastError:   syncErr.Error(),
		QueuedAt:    updated.UpdatedAt,
		LastAttempt: updated.UpdatedAt,
	}
	if err := s.outbox.Enqueue(ctx, pending); err != nil {
		return result, fmt.Errorf("queueing %s for sync: %w", taskID, err)
	}

	return result, nil
}

// push sends an order to the backend.
func (s *WorkOrderService) push(ctx context.Context, order domain.WorkOrder) error {
	if s.remote == nil {
		return domain.ErrBackendUnavailable
	}
	err := s.remote.Save(ctx, order)
	if s.metrics != nil {
		s.metrics.SyncAttempted(err == nil)
	}
	return err
}

// PriorityQueue groups open work orders by priority. Critical and high
// orders are sorted by due date with undated orders last.
func (s *WorkOrderService) PriorityQueue(ctx context.Context) (*domain.PriorityQueue, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := &domain.PriorityQueue{}
	for _, wo := range orders {
		if wo.IsCompleted() {
			continue
		}
		switch wo.Priority {
		case domain.PriorityCritical:
			q.Critical = append(q.Critical, wo)
		case domain.PriorityHigh:
			q.High = append(q.High, wo)
		case domain.PriorityMedium:
			q.Medium = append(q.Medium, wo)
		case domain.PriorityLow:
			q.Low = append(q.Low, wo)
		default:
			logger.Warn("Work order %s has unknown priority %q", wo.TaskID, wo.Priority)
		}
	}

	sortByDueDate(q.Critical)
	sortByDueDate(q.High)

	return q, nil
}

func sortByDueDate(orders []domain.WorkOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		switch {
		case !a.HasDueDate():
			return false
		case !b.HasDueDate():
			return true
		default:
			return a.DueDate.Before(b.DueDate)
		}
	})
}

// Briefing returns the condensed playbook section for a work order.
func (s *WorkOrderService) Briefing(ctx context.Context, taskID string) (*domain.Briefing, error) {
	wo, err := s.local.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading work order %s: %w", taskID, err)
	}

	b := &domain.Briefing{WorkOrder: *wo}
	doc := s.catalog.Lookup(wo.IssueDocumentID)
	if doc == nil {
		return b, nil
	}

	b.Document = doc
	b.ImmediateActions = firstN(doc.ImmediateActions, briefingActions)
	if len(doc.ResolutionSteps) > 0 {
		b.NextStep = doc.ResolutionSteps[0]
	}
	return b, nil
}

// SupervisorContact returns the escalation contact URI.
func (s *WorkOrderService) SupervisorContact() (string, error) {
	contact := strings.TrimSpace(s.contact)
	if contact == "" {
		return "", domain.ErrContactNotConfigured
	}
	return contact, nil
}

// Import upserts dispatched work orders into the local store.
// Orders without a task ID are skipped.
func (s *WorkOrderService) Import(ctx context.Context, orders []domain.WorkOrder) (int, error) {
	imported := 0
	for i := range orders {
		wo := normaliseOrder(orders[i])
		if wo.TaskID == "" {
			logger.Warn("Skipping dispatched work order %d without task ID", i)
			continue
		}
		if err := s.local.Save(ctx, wo); err != nil {
			return imported, fmt.Errorf("importing %s: %w", wo.TaskID, err)
		}
		imported++
	}
	logger.Debug("Imported %d work orders", imported)
	return imported, nil
}

// Pull copies the backend's work orders into the local store. Orders with
// a queued local change are left alone so the pending change is not lost.
func (s *WorkOrderService) Pull(ctx context.Context) (int, error) {
	if s.remote == nil {
		return 0, domain.ErrBackendUnavailable
	}

	remoteOrders, err := s.remote.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing backend work orders: %w", err)
	}

	pending, err := s.outbox.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing pending changes: %w", err)
	}
	skip := make(map[string]bool, len(pending))
	for _, p := range pending {
		skip[p.TaskID] = true
	}

	pulled := 0
	for i := range remoteOrders {
		if skip[remoteOrders[i].TaskID] {
			continue
		}
		if err := s.local.Save(ctx, normaliseOrder(remoteOrders[i])); err != nil {
			return pulled, fmt.Errorf("saving %s: %w", remoteOrders[i].TaskID, err)
		}
		pulled++
	}
	return pulled, nil
}

// normaliseOrder fills defaults for fields external feeds often omit.
func normaliseOrder(wo domain.WorkOrder) domain.WorkOrder {
	wo.TaskID = strings.TrimSpace(wo.TaskID)
	if !wo.Status.IsValid() {
		wo.Status = domain.StatusPending
	}
	if !wo.Priority.IsValid() {
		wo.Priority = domain.PriorityMedium
	}
	return wo
}

// isNotFound reports whether err is a missing-entity error.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

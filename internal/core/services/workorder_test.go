package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/memory"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// flakyStore wraps an in-memory store and fails saves while err is set.
type flakyStore struct {
	*memory.WorkOrderStore

	mu    sync.Mutex
	err   error
	saves int
}

func newFlakyStore(orders ...domain.WorkOrder) *flakyStore {
	return &flakyStore{WorkOrderStore: memory.NewWorkOrderStore(orders...)}
}

func (f *flakyStore) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *flakyStore) Save(ctx context.Context, order domain.WorkOrder) error {
	f.mu.Lock()
	f.saves++
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.WorkOrderStore.Save(ctx, order)
}

type workOrderFixture struct {
	svc    *WorkOrderService
	local  *memory.WorkOrderStore
	remote *flakyStore
	outbox *memory.SyncOutbox
}

func newWorkOrderFixture(t *testing.T, orders ...domain.WorkOrder) *workOrderFixture {
	t.Helper()
	f := &workOrderFixture{
		local:  memory.NewWorkOrderStore(orders...),
		remote: newFlakyStore(orders...),
		outbox: memory.NewSyncOutbox(),
	}
	f.svc = NewWorkOrderService(f.local, f.remote, f.outbox, newTestCatalog(t))
	return f
}

func openOrder(id string, p domain.Priority) domain.WorkOrder {
	return domain.WorkOrder{TaskID: id, Priority: p, Status: domain.StatusPending}
}

func TestWorkOrderService_ListSorted(t *testing.T) {
	f := newWorkOrderFixture(t, openOrder("WO-3", domain.PriorityLow), openOrder("WO-1", domain.PriorityHigh))

	orders, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "WO-1", orders[0].TaskID)
	assert.Equal(t, "WO-3", orders[1].TaskID)
}

func TestWorkOrderService_Resolve_Synced(t *testing.T) {
	ctx := context.Background()
	f := newWorkOrderFixture(t, openOrder("WO-1", domain.PriorityCritical))
	metrics := &recordingMetrics{}
	f.svc.SetMetrics(metrics)

	result, err := f.svc.Resolve(ctx, "WO-1")
	require.NoError(t, err)
	assert.True(t, result.Synced)
	assert.NoError(t, result.SyncErr)
	assert.Equal(t, domain.StatusCompleted, result.Order.Status)
	assert.False(t, result.Order.UpdatedAt.IsZero())

	local, err := f.local.Get(ctx, "WO-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, local.Status)

	remote, err := f.remote.Get(ctx, "WO-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, remote.Status)

	pending, err := f.outbox.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, []bool{true}, metrics.syncs)
}

func TestWorkOrderService_Resolve_MarkedLocally(t *testing.T) {
	ctx := context.Background()
	f := newWorkOrderFixture(t, openOrder("WO-1", domain.PriorityHigh))
	f.remote.setErr(errors.New("backend timeout"))

	result, err := f.svc.Resolve(ctx, "WO-1")
	require.NoError(t, err)
	assert.False(t, result.Synced)
	assert.EqualError(t, result.SyncErr, "backend timeout")

	local, err := f.local.Get(ctx, "WO-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, local.Status)

	pending, err := f.outbox.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "WO-1", pending[0].TaskID)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, "backend timeout", pending[0].LastError)
}

func TestWorkOrderService_Resolve_NoBackend(t *testing.T) {
	ctx := context.Background()
	local := memory.NewWorkOrderStore(openOrder("WO-1", domain.PriorityLow))
	outbox := memory.NewSyncOutbox()
	svc := NewWorkOrderService(local, nil, outbox, newTestCatalog(t))

	result, err := svc.Resolve(ctx, "WO-1")
	require.NoError(t, err)
	assert.False(t, result.Synced)
	assert.ErrorIs(t, result.SyncErr, domain.ErrBackendUnavailable)

	pending, err := outbox.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestWorkOrderService_Resolve_AlreadyCompleted(t *testing.T) {
	done := openOrder("WO-1", domain.PriorityLow)
	done.Status = domain.StatusCompleted
	f := newWorkOrderFixture(t, done)

	_, err := f.svc.Resolve(context.Background(), "WO-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	assert.Zero(t, f.remote.saves)
}

func TestWorkOrderService_Resolve_NotFound(t *testing.T) {
	f := newWorkOrderFixture(t)

	_, err := f.svc.Resolve(context.Background(), "WO-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkOrderService_PriorityQueue(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dated := func(id string, p domain.Priority, hours int) domain.WorkOrder {
		wo := openOrder(id, p)
		wo.DueDate = base.Add(time.Duration(hours) * time.Hour)
		return wo
	}
	done := dated("WO-0", domain.PriorityCritical, 1)
	done.Status = domain.StatusCompleted

	f := newWorkOrderFixture(t,
		done,
		dated("WO-1", domain.PriorityCritical, 5),
		openOrder("WO-2", domain.PriorityCritical),
		dated("WO-3", domain.PriorityCritical, 2),
		dated("WO-4", domain.PriorityHigh, 9),
		dated("WO-5", domain.PriorityHigh, 3),
		openOrder("WO-7", domain.PriorityMedium),
		openOrder("WO-6", domain.PriorityMedium),
		openOrder("WO-8", domain.PriorityLow),
	)

	q, err := f.svc.PriorityQueue(context.Background())
	require.NoError(t, err)

	ids := func(orders []domain.WorkOrder) []string {
		out := make([]string, len(orders))
		for i := range orders {
			out[i] = orders[i].TaskID
		}
		return out
	}
	assert.Equal(t, []string{"WO-3", "WO-1", "WO-2"}, ids(q.Critical))
	assert.Equal(t, []string{"WO-5", "WO-4"}, ids(q.High))
	assert.Equal(t, []string{"WO-6", "WO-7"}, ids(q.Medium))
	assert.Equal(t, []string{"WO-8"}, ids(q.Low))
	assert.Equal(t, 8, q.Len())
	assert.Equal(t, "WO-3", q.Ordered()[0].TaskID)
}

func TestWorkOrderService_Briefing(t *testing.T) {
	wo := openOrder("WO-1", domain.PriorityCritical)
	wo.IssueDocumentID = domain.DocumentPowerSupplyFailure
	f := newWorkOrderFixture(t, wo, openOrder("WO-2", domain.PriorityLow))

	b, err := f.svc.Briefing(context.Background(), "WO-1")
	require.NoError(t, err)
	require.NotNil(t, b.Document)
	assert.Equal(t, 45, b.Document.EstimatedMinutes)
	assert.Equal(t, []string{
		"Verify the server is currently powered off and safe to service",
		"Confirm redundant power feed status before disconnecting any cables",
		"Notify impacted stakeholders of the outage and expected downtime",
	}, b.ImmediateActions)
	assert.Equal(t,
		"Disconnect the failed PSU from both A/B feeds and allow capacitors to discharge (minimum 30 seconds)",
		b.NextStep)

	plain, err := f.svc.Briefing(context.Background(), "WO-2")
	require.NoError(t, err)
	assert.Nil(t, plain.Document)
	assert.Empty(t, plain.ImmediateActions)
	assert.Empty(t, plain.NextStep)
}

func TestWorkOrderService_SupervisorContact(t *testing.T) {
	f := newWorkOrderFixture(t)

	contact, err := f.svc.SupervisorContact()
	require.NoError(t, err)
	assert.Equal(t, "tel:19725550134", contact)

	f.svc.SetSupervisorContact("tel:15551234567")
	contact, err = f.svc.SupervisorContact()
	require.NoError(t, err)
	assert.Equal(t, "tel:15551234567", contact)

	f.svc.SetSupervisorContact("  ")
	_, err = f.svc.SupervisorContact()
	assert.ErrorIs(t, err, domain.ErrContactNotConfigured)
}

func TestWorkOrderService_Import(t *testing.T) {
	ctx := context.Background()
	f := newWorkOrderFixture(t)

	n, err := f.svc.Import(ctx, []domain.WorkOrder{
		{TaskID: " WO-10 ", Title: "PSU swap"},
		{TaskID: "", Title: "no id"},
		{TaskID: "WO-11", Priority: domain.PriorityCritical, Status: domain.StatusOnHold},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	wo, err := f.local.Get(ctx, "WO-10")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, wo.Status)
	assert.Equal(t, domain.PriorityMedium, wo.Priority)

	wo, err = f.local.Get(ctx, "WO-11")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOnHold, wo.Status)
	assert.Equal(t, domain.PriorityCritical, wo.Priority)
}

func TestWorkOrderService_Pull(t *testing.T) {
	ctx := context.Background()
	local := memory.NewWorkOrderStore(openOrder("WO-1", domain.PriorityLow))
	remote := memory.NewWorkOrderStore(
		domain.WorkOrder{TaskID: "WO-1", Title: "remote copy", Status: domain.StatusPending},
		domain.WorkOrder{TaskID: "WO-2", Title: "new"},
	)
	outbox := memory.NewSyncOutbox()
	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-1"}))

	svc := NewWorkOrderService(local, remote, outbox, newTestCatalog(t))

	n, err := svc.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	wo, err := local.Get(ctx, "WO-1")
	require.NoError(t, err)
	assert.Empty(t, wo.Title, "order with a queued change is not overwritten")

	wo, err = local.Get(ctx, "WO-2")
	require.NoError(t, err)
	assert.Equal(t, "new", wo.Title)
	assert.Equal(t, domain.PriorityMedium, wo.Priority)
}

func TestWorkOrderService_PullNoBackend(t *testing.T) {
	svc := NewWorkOrderService(memory.NewWorkOrderStore(), nil, memory.NewSyncOutbox(), newTestCatalog(t))

	_, err := svc.Pull(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

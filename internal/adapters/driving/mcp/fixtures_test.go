package mcp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/clock"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/playbooks"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/memory"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/services"
)

// toolCall is one recorded metrics event.
type toolCall struct {
	tool    string
	success bool
}

type recordingMetrics struct {
	mu    sync.Mutex
	calls []toolCall
}

func (r *recordingMetrics) ToolCalled(tool string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, toolCall{tool, success})
}

func (r *recordingMetrics) all() []toolCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toolCall(nil), r.calls...)
}

func testOrders() []domain.WorkOrder {
	due := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
	return []domain.WorkOrder{
		{
			TaskID:          "WO-2024-001",
			Title:           "Replace failed PSU",
			Location:        "Dallas DC-2",
			Priority:        domain.PriorityCritical,
			Status:          domain.StatusPending,
			DueDate:         due,
			IssueDocumentID: domain.DocumentPowerSupplyFailure,
		},
		{
			TaskID:   "WO-2024-002",
			Title:    "Cable audit",
			Priority: domain.PriorityLow,
			Status:   domain.StatusInProgress,
		},
		{
			TaskID:   "WO-2024-003",
			Title:    "Closed out",
			Priority: domain.PriorityHigh,
			Status:   domain.StatusCompleted,
		},
	}
}

// newTestPorts wires real services over in-memory stores.
// With no backend, resolved orders stay local and are queued.
func newTestPorts(t *testing.T) (*Ports, *recordingMetrics) {
	t.Helper()

	catalog, err := services.NewCatalog(playbooks.NewEmbeddedSource())
	require.NoError(t, err)

	store := memory.NewWorkOrderStore(testOrders()...)
	metrics := &recordingMetrics{}

	return &Ports{
		Assistant:  services.NewAssistantService(store, catalog, clock.NewManualScheduler(), 0),
		Catalog:    catalog,
		WorkOrders: services.NewWorkOrderService(store, nil, memory.NewSyncOutbox(), catalog),
		Metrics:    metrics,
	}, metrics
}

func newTestServer(t *testing.T) (*Server, *recordingMetrics) {
	t.Helper()
	ports, metrics := newTestPorts(t)
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server, metrics
}

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/clock"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/playbooks"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/memory"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/services"
)

func testOrders() []domain.WorkOrder {
	return []domain.WorkOrder{
		{
			TaskID:          "WO-2024-001",
			Title:           "Replace failed PSU",
			Priority:        domain.PriorityCritical,
			Status:          domain.StatusPending,
			DueDate:         time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC),
			IssueDocumentID: domain.DocumentPowerSupplyFailure,
		},
		{
			TaskID:   "WO-2024-002",
			Title:    "Cable audit",
			Priority: domain.PriorityLow,
			Status:   domain.StatusInProgress,
		},
	}
}

// newTestPorts wires real services over in-memory stores and a manual scheduler.
func newTestPorts(t *testing.T) (*Ports, *clock.ManualScheduler) {
	t.Helper()

	catalog, err := services.NewCatalog(playbooks.NewEmbeddedSource())
	require.NoError(t, err)

	store := memory.NewWorkOrderStore(testOrders()...)
	sched := clock.NewManualScheduler()

	return &Ports{
		Assistant:  services.NewAssistantService(store, catalog, sched, domain.DefaultReplyDelay),
		WorkOrders: services.NewWorkOrderService(store, nil, memory.NewSyncOutbox(), catalog),
		Catalog:    catalog,
	}, sched
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

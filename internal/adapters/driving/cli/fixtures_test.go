package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/playbooks"
	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/memory"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/services"
)

// inlineScheduler runs tasks immediately on the caller's goroutine.
type inlineScheduler struct{}

func (inlineScheduler) Schedule(_ time.Duration, task func()) func() {
	task()
	return func() {}
}

type cliFixture struct {
	store    *memory.WorkOrderStore
	remote   *memory.WorkOrderStore
	outbox   *memory.SyncOutbox
	config   *memory.ConfigStore
	orders   *services.WorkOrderService
	retrier  *services.SyncRetrier
	settings *services.SettingsService
}

func fixtureOrders() []domain.WorkOrder {
	return []domain.WorkOrder{
		{
			TaskID:          "WO-2024-001",
			Title:           "Replace failed PSU",
			Location:        "Dallas DC-2",
			RackNumber:      "B-12",
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
		{
			TaskID:   "WO-2024-003",
			Title:    "Closed out",
			Priority: domain.PriorityHigh,
			Status:   domain.StatusCompleted,
		},
	}
}

// setupCLI wires real services over in-memory stores. withRemote adds an
// in-memory backend.
func setupCLI(t *testing.T, withRemote bool) *cliFixture {
	t.Helper()

	catalog, err := services.NewCatalog(playbooks.NewEmbeddedSource())
	require.NoError(t, err)

	f := &cliFixture{
		store:  memory.NewWorkOrderStore(fixtureOrders()...),
		outbox: memory.NewSyncOutbox(),
		config: memory.NewConfigStore(),
	}

	var remote *memory.WorkOrderStore
	if withRemote {
		remote = memory.NewWorkOrderStore(fixtureOrders()...)
		f.remote = remote
	}

	// A nil *memory.WorkOrderStore must not become a non-nil interface.
	if remote != nil {
		f.orders = services.NewWorkOrderService(f.store, remote, f.outbox, catalog)
		f.retrier = services.NewSyncRetrier(f.store, remote, f.outbox, time.Minute)
	} else {
		f.orders = services.NewWorkOrderService(f.store, nil, f.outbox, catalog)
		f.retrier = services.NewSyncRetrier(f.store, nil, f.outbox, time.Minute)
	}
	f.settings = services.NewSettingsService(f.config)

	SetServices(Services{
		Assistant:  services.NewAssistantService(f.store, catalog, inlineScheduler{}, 0),
		Catalog:    catalog,
		WorkOrders: f.orders,
		Sync:       f.retrier,
		Settings:   f.settings,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return f
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	listStatus = ""
	importWatch = false
	plainOutput = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

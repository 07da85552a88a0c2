package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestWorkOrderListCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "workorder", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "WO-2024-001")
	assert.Contains(t, out, "WO-2024-003")
	assert.Contains(t, out, "Total: 3 work orders")
}

func TestWorkOrderListCmd_StatusFilter(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "wo", "list", "--status", "completed")

	require.NoError(t, err)
	assert.Contains(t, out, "WO-2024-003")
	assert.NotContains(t, out, "WO-2024-001")
	assert.Contains(t, out, "Total: 1 work orders")
}

func TestWorkOrderShowCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "workorder", "show", "WO-2024-001")

	require.NoError(t, err)
	assert.Contains(t, out, "Work Order: WO-2024-001")
	assert.Contains(t, out, "Priority:  Critical")
	assert.Contains(t, out, "Rack: B-12")
	assert.Contains(t, out, "Playbook: power_supply_failure")
}

func TestWorkOrderResolveCmd(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		f := setupCLI(t, true)

		out, err := execute(t, "", "workorder", "resolve", "WO-2024-001")

		require.NoError(t, err)
		assert.Contains(t, out, "Work order WO-2024-001 marked completed.")
		remote, err := f.remote.Get(context.Background(), "WO-2024-001")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, remote.Status)
	})

	t.Run("kept locally", func(t *testing.T) {
		f := setupCLI(t, false)

		out, err := execute(t, "", "workorder", "resolve", "WO-2024-001")

		require.NoError(t, err)
		assert.Contains(t, out, "marked completed locally")
		assert.Contains(t, out, "queued")
		pending, err := f.outbox.List(context.Background())
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "WO-2024-001", pending[0].TaskID)
	})

	t.Run("already completed", func(t *testing.T) {
		setupCLI(t, false)

		_, err := execute(t, "", "workorder", "resolve", "WO-2024-003")

		assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	})
}

func TestWorkOrderPriorityCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "workorder", "priority")

	require.NoError(t, err)
	critical := strings.Index(out, "Critical (1)")
	low := strings.Index(out, "Low (1)")
	require.NotEqual(t, -1, critical)
	require.NotEqual(t, -1, low)
	assert.Less(t, critical, low)
	assert.NotContains(t, out, "WO-2024-003")
}

func TestWorkOrderBriefingCmd(t *testing.T) {
	setupCLI(t, false)

	t.Run("with playbook", func(t *testing.T) {
		out, err := execute(t, "", "workorder", "briefing", "WO-2024-001")

		require.NoError(t, err)
		assert.Contains(t, out, "Playbook: Power Supply Failure Response")
		assert.Contains(t, out, "Immediate actions:")
		assert.Contains(t, out, "Next step:")
	})

	t.Run("without playbook", func(t *testing.T) {
		out, err := execute(t, "", "workorder", "briefing", "WO-2024-002")

		require.NoError(t, err)
		assert.Contains(t, out, "No playbook is linked")
	})
}

func TestWorkOrderImportCmd(t *testing.T) {
	f := setupCLI(t, false)

	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`work_orders:
  - task_id: WO-2024-010
    title: Fan replacement
    priority: medium
  - title: missing id
`), 0600))

	out, err := execute(t, "", "workorder", "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 work orders")
	wo, err := f.store.Get(context.Background(), "WO-2024-010")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, wo.Status)
}

func TestWorkOrderPullCmd(t *testing.T) {
	t.Run("no backend", func(t *testing.T) {
		setupCLI(t, false)

		_, err := execute(t, "", "workorder", "pull")

		assert.EqualError(t, err, "no backend configured (set backend.url)")
	})

	t.Run("pulls", func(t *testing.T) {
		f := setupCLI(t, true)
		require.NoError(t, f.remote.Save(context.Background(), domain.WorkOrder{
			TaskID: "WO-2024-020", Title: "New dispatch", Priority: domain.PriorityHigh, Status: domain.StatusPending,
		}))

		out, err := execute(t, "", "workorder", "pull")

		require.NoError(t, err)
		assert.Contains(t, out, "Pulled 4 work orders")
	})
}

func TestWorkOrderSyncCmd(t *testing.T) {
	t.Run("nothing queued", func(t *testing.T) {
		setupCLI(t, true)

		out, err := execute(t, "", "workorder", "sync")

		require.NoError(t, err)
		assert.Contains(t, out, "Nothing to sync.")
	})

	t.Run("pushes queued change", func(t *testing.T) {
		f := setupCLI(t, true)
		ctx := context.Background()
		require.NoError(t, f.outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-2024-002", Attempts: 1}))

		out, err := execute(t, "", "workorder", "sync")

		require.NoError(t, err)
		assert.Contains(t, out, "Synced 1 of 1 changes.")
		pending, err := f.outbox.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestContactCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "contact")

	require.NoError(t, err)
	assert.Equal(t, "tel:19725550134\n", out)
}

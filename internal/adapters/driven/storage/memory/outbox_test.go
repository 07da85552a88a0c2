package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestSyncOutbox_EnqueueAndList(t *testing.T) {
	ctx := context.Background()
	outbox := NewSyncOutbox()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-2", QueuedAt: base.Add(time.Minute)}))
	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-1", QueuedAt: base}))

	pending, err := outbox.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "WO-1", pending[0].TaskID)
	assert.Equal(t, "WO-2", pending[1].TaskID)
}

func TestSyncOutbox_EnqueueKeepsQueuedAt(t *testing.T) {
	ctx := context.Background()
	outbox := NewSyncOutbox()
	first := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-1", Attempts: 1, QueuedAt: first}))
	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{
		TaskID:    "WO-1",
		Attempts:  2,
		LastError: "timeout",
		QueuedAt:  first.Add(time.Hour),
	}))

	pending, err := outbox.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].Attempts)
	assert.Equal(t, "timeout", pending[0].LastError)
	assert.Equal(t, first, pending[0].QueuedAt)
}

func TestSyncOutbox_Remove(t *testing.T) {
	ctx := context.Background()
	outbox := NewSyncOutbox()
	require.NoError(t, outbox.Enqueue(ctx, domain.PendingSync{TaskID: "WO-1"}))

	require.NoError(t, outbox.Remove(ctx, "WO-1"))
	require.NoError(t, outbox.Remove(ctx, "WO-missing"))

	pending, err := outbox.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSyncOutbox_EnqueueRequiresTaskID(t *testing.T) {
	err := NewSyncOutbox().Enqueue(context.Background(), domain.PendingSync{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure SyncRetrier implements the interfaces.
var (
	_ driving.SyncService = (*SyncRetrier)(nil)
	_ driving.Scheduler   = (*SyncRetrier)(nil)
)

var syncLog = logger.For("sync")

// SyncRetrier re-pushes queued local work order changes to the backend.
type SyncRetrier struct {
	local    driven.WorkOrderStore
	remote   driven.WorkOrderStore
	outbox   driven.SyncOutbox
	interval time.Duration
	metrics  driven.Metrics
	now      func() time.Time

	// passMu serialises passes so a manual retry and a tick never overlap.
	// It also guards backoffUntil.
	passMu       sync.Mutex
	backoffUntil time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
	last    *domain.TaskResult
}

// NewSyncRetrier creates a retrier. remote may be nil, in which case
// passes are no-ops that leave the outbox untouched.
func NewSyncRetrier(
	local driven.WorkOrderStore,
	remote driven.WorkOrderStore,
	outbox driven.SyncOutbox,
	interval time.Duration,
) *SyncRetrier {
	if interval <= 0 {
		interval = domain.DefaultRetryInterval
	}
	return &SyncRetrier{
		local:    local,
		remote:   remote,
		outbox:   outbox,
		interval: interval,
		now:      time.Now,
	}
}

// SetMetrics sets the optional metrics recorder.
func (r *SyncRetrier) SetMetrics(m driven.Metrics) {
	r.metrics = m
}

// Start runs a pass immediately and then on every interval tick.
// It blocks until Stop is called or ctx is cancelled.
func (r *SyncRetrier) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil // Already running
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.wg.Add(1)
	r.mu.Unlock()

	defer r.wg.Done()
	return r.run(ctx, stopCh)
}

// Stop shuts the loop down and waits for an in-progress pass to finish.
func (r *SyncRetrier) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

func (r *SyncRetrier) run(ctx context.Context, stopCh <-chan struct{}) error {
	r.runPass(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.markStopped()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			r.runPass(ctx)
		}
	}
}

func (r *SyncRetrier) markStopped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.running = false
		close(r.stopCh)
	}
}

// runPass executes one pass and records its result.
func (r *SyncRetrier) runPass(ctx context.Context) {
	result := domain.TaskResult{
		TaskID:    domain.TaskIDSyncRetry,
		StartedAt: r.now(),
	}

	synced, err := r.RetryPending(ctx)

	result.EndedAt = r.now()
	result.ItemsProcessed = synced
	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
		syncLog.Warn("retry pass: %v", err)
	}

	r.mu.Lock()
	r.last = &result
	r.mu.Unlock()
}

// LastResult returns the most recent pass result, or nil before the first pass.
func (r *SyncRetrier) LastResult() *domain.TaskResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	res := *r.last
	return &res
}

// Pending returns the queued changes.
func (r *SyncRetrier) Pending(ctx context.Context) ([]domain.PendingSync, error) {
	return r.outbox.List(ctx)
}

// RetryPending pushes every queued change once. Entries the backend accepts
// are removed; failures stay queued with an incremented attempt count.
// A rate-limited push ends the pass, and passes inside the backend's
// retry-after window push nothing.
func (r *SyncRetrier) RetryPending(ctx context.Context) (int, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	if r.remote == nil {
		return 0, domain.ErrBackendUnavailable
	}
	if wait := r.backoffUntil.Sub(r.now()); wait > 0 {
		syncLog.Debug("Backend rate limited, next push in %s", wait.Round(time.Second))
		return 0, nil
	}

	pending, err := r.outbox.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing pending changes: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	logger.Section("Sync Retry")
	syncLog.Debug("%d pending changes", len(pending))

	synced := 0
	for i := range pending {
		if ctx.Err() != nil {
			return synced, ctx.Err()
		}
		ok, pushErr, err := r.retryOne(ctx, pending[i])
		if err != nil {
			return synced, err
		}
		if ok {
			synced++
			continue
		}
		if errors.Is(pushErr, domain.ErrRateLimited) {
			r.backOff(pushErr)
			break
		}
	}
	return synced, nil
}

// backOff honours the backend's retry-after hint. Caller holds passMu.
func (r *SyncRetrier) backOff(pushErr error) {
	wait, ok := domain.RetryAfter(pushErr)
	if !ok || wait <= 0 {
		syncLog.Warn("Backend rate limited, ending pass")
		return
	}
	r.backoffUntil = r.now().Add(wait)
	syncLog.Warn("Backend rate limited, pausing pushes for %s", wait)
}

// retryOne pushes a single entry. The last error is an outbox failure;
// backend failures are recorded on the entry and returned as pushErr.
func (r *SyncRetrier) retryOne(ctx context.Context, p domain.PendingSync) (ok bool, pushErr, err error) {
	wo, err := r.local.Get(ctx, p.TaskID)
	if isNotFound(err) {
		syncLog.Warn("Dropping queued change for missing work order %s", p.TaskID)
		return false, nil, r.outbox.Remove(ctx, p.TaskID)
	}
	if err != nil {
		return false, nil, fmt.Errorf("loading work order %s: %w", p.TaskID, err)
	}

	pushErr = r.remote.Save(ctx, *wo)
	if r.metrics != nil {
		r.metrics.SyncAttempted(pushErr == nil)
	}

	if pushErr == nil {
		syncLog.Debug("Work order %s synced after %d attempts", p.TaskID, p.Attempts+1)
		if err := r.outbox.Remove(ctx, p.TaskID); err != nil {
			return true, nil, fmt.Errorf("removing %s from outbox: %w", p.TaskID, err)
		}
		return true, nil, nil
	}

	p.Attempts++
	p.LastError = pushErr.Error()
	p.LastAttempt = r.now().UTC()
	if err := r.outbox.Enqueue(ctx, p); err != nil {
		return false, pushErr, fmt.Errorf("updating outbox entry %s: %w", p.TaskID, err)
	}
	return false, pushErr, nil
}

package cli

import (
	"context"

	"github.com/anirvinkotaru/techassist/internal/logger"
)

// startScheduler runs the background sync scheduler for long-lived commands.
// The returned function stops it.
func startScheduler(ctx context.Context) func() {
	if syncScheduler == nil {
		return func() {}
	}

	schedulerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := syncScheduler.Start(schedulerCtx); err != nil && schedulerCtx.Err() == nil {
			// Scheduler errors shouldn't block the command
			logger.Warn("scheduler stopped: %v", err)
		}
	}()

	return func() {
		if err := syncScheduler.Stop(); err != nil {
			logger.Warn("scheduler stop error: %v", err)
		}
		cancel()
		<-done
	}
}

// Package dispatch reads work orders handed out by the dispatcher as a YAML
// file and watches it for updates.
//
// File format:
//
//	work_orders:
//	  - task_id: WO-2024-001
//	    title: PSU failure in rack B-12
//	    priority: critical
//	    status: pending
//	    issue_document_id: power_supply_failure
//	    due_date: 2024-06-01T18:00:00Z
package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure FileFeed implements the interface.
var _ driven.WorkOrderFeed = (*FileFeed)(nil)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

type feedFile struct {
	WorkOrders []domain.WorkOrder `yaml:"work_orders"`
}

// FileFeed is a YAML work order file.
type FileFeed struct {
	path     string
	debounce time.Duration
}

// NewFileFeed creates a feed for path.
func NewFileFeed(path string) *FileFeed {
	return &FileFeed{path: path, debounce: DefaultDebounce}
}

// Path returns the feed file path.
func (f *FileFeed) Path() string {
	return f.path
}

// Load reads and parses the feed file.
func (f *FileFeed) Load(_ context.Context) ([]domain.WorkOrder, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading dispatch feed: %w", err)
	}

	var file feedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing dispatch feed %s: %w", f.path, err)
	}
	return file.WorkOrders, nil
}

// Watch reloads the file after every change and passes the batch to onChange.
// The parent directory is watched so that atomic replaces are seen.
// Unparseable revisions are logged and skipped. Returns nil once ctx is done.
func (f *FileFeed) Watch(ctx context.Context, onChange func([]domain.WorkOrder)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching dispatch feed %s", f.path)

	target := filepath.Clean(f.path)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(f.debounce)
			} else {
				timer.Reset(f.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			orders, err := f.Load(ctx)
			if err != nil {
				logger.Warn("dispatch feed: %v", err)
				continue
			}
			logger.Debug("Dispatch feed changed: %d work orders", len(orders))
			onChange(orders)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("dispatch watcher: %v", err)
		}
	}
}

package core

import (
	"context"
	"sync"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// Watcher re-checks one account and reports how its commit count moved
// since the previous successful check. Safe for use from scheduler goroutines.
type Watcher struct {
	client contract.GitHubClient
	handle string
	clock  func() time.Time

	mu   sync.Mutex
	last *schema.HistogramSummary
}

// NewWatcher creates a watcher for cfg.Handle.
func NewWatcher(cfg *contract.Config, client contract.GitHubClient) *Watcher {
	return &Watcher{client: client, handle: cfg.Handle, clock: cfg.Now}
}

// Check fetches a fresh report and compares it with the previous one.
// A failed check leaves the baseline untouched.
func (w *Watcher) Check(ctx context.Context) (schema.WatchUpdate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock()
	report, err := FetchProfile(ctx, w.client, w.handle, now)
	if err != nil {
		return schema.WatchUpdate{Handle: w.handle, CheckedAt: now}, err
	}

	update := schema.WatchUpdate{
		Handle:    w.handle,
		CheckedAt: now,
		Summary:   report.Summary,
		First:     w.last == nil,
	}
	if n := len(report.Commits); n > 0 {
		update.Today = report.Commits[n-1].Count
	}
	if w.last != nil {
		update.Delta = report.Summary.Total - w.last.Total
	}
	summary := report.Summary
	w.last = &summary
	return update, nil
}

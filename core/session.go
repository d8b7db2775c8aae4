package core

import (
	"context"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// Session holds the state of an interactive view: the last searched handle,
// the report on display, the last error and the active tab.
// It is driven from a single goroutine.
type Session struct {
	client contract.GitHubClient
	clock  func() time.Time

	searched string
	report   *schema.ProfileReport
	err      error
	tab      schema.ViewTab
}

// NewSession creates a session that starts on the configured tab.
func NewSession(cfg *contract.Config, client contract.GitHubClient) *Session {
	tab := cfg.Tab
	if tab == "" {
		tab = schema.ReposTab
	}
	return &Session{
		client: client,
		clock:  cfg.Now,
		tab:    tab,
	}
}

// Query fetches the report for handle and reports whether anything changed.
// Asking for the handle already on display is a no-op. Otherwise the previous
// report and error are cleared before fetching; on failure the view stays empty.
// A failed handle is not remembered, so asking again retries it.
func (s *Session) Query(ctx context.Context, handle string) (bool, error) {
	normalized, err := contract.NormalizeHandle(handle)
	if err != nil {
		return false, err
	}
	if normalized == s.searched {
		return false, nil
	}

	s.report = nil
	s.err = nil
	s.searched = ""

	report, err := FetchProfile(ctx, s.client, normalized, s.clock())
	if err != nil {
		s.err = err
		return true, err
	}
	s.report = report
	s.searched = normalized
	return true, nil
}

// Report returns the report on display, or nil.
func (s *Session) Report() *schema.ProfileReport {
	return s.report
}

// Err returns the error of the last query, or nil.
func (s *Session) Err() error {
	return s.err
}

// Searched returns the handle on display.
func (s *Session) Searched() string {
	return s.searched
}

// Tab returns the active tab.
func (s *Session) Tab() schema.ViewTab {
	return s.tab
}

// SetTab switches the active tab without refetching.
func (s *Session) SetTab(tab schema.ViewTab) {
	s.tab = tab
}

// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/ghpulse/schema"
)

// GitHubClient defines the read operations needed to build a profile report.
// This allows the query logic to be tested without reaching the real API.
type GitHubClient interface {
	// GetUser returns the account profile for the handle.
	GetUser(ctx context.Context, handle string) (schema.User, error)

	// ListRepos returns the first page of repositories, most recently updated first.
	ListRepos(ctx context.Context, handle string, perPage int) ([]schema.Repo, error)

	// ListEvents returns the public event feed of the account.
	ListEvents(ctx context.Context, handle string) ([]schema.Event, error)
}

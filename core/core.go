// Package core has core logic for fetching profiles and driving interactive sessions.
package core

import (
	"context"
	"errors"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/outwriter"
	"github.com/huangsam/ghpulse/schema"
)

// ExecutorFunc defines the function signature for executing the report commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error

// ExecuteProfile fetches the report for cfg.Handle and prints the profile card with the active tab.
// It serves as the main entry point for the 'profile' command.
func ExecuteProfile(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error {
	return executeSection(ctx, cfg, client, schema.FullSection)
}

// ExecuteRepos prints the repository listing.
func ExecuteRepos(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error {
	return executeSection(ctx, cfg, client, schema.ReposSection)
}

// ExecuteActivity prints the commit histogram and the activity timeline.
func ExecuteActivity(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error {
	return executeSection(ctx, cfg, client, schema.ActivitySection)
}

// ExecuteCommits prints the 30-day commit histogram.
func ExecuteCommits(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error {
	return executeSection(ctx, cfg, client, schema.CommitsSection)
}

// executeSection runs one query and writes a section of the report.
// A failed upstream query is rendered with its user-facing message before being returned.
func executeSection(ctx context.Context, cfg *contract.Config, client contract.GitHubClient, section schema.ReportSection) error {
	ow := outwriter.NewOutWriter()
	report, duration, err := GetProfileResults(ctx, cfg, client)
	if err != nil {
		var qe *contract.QueryError
		if errors.As(err, &qe) {
			_ = ow.WriteError(err, cfg)
		}
		return err
	}
	return ow.WriteReport(report, cfg, section, duration)
}

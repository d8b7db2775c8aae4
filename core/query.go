package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/ghpulse/core/agg"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"golang.org/x/sync/errgroup"
)

// FetchProfile issues the profile, repository and event fetches concurrently
// and waits for all of them to settle. Any failure discards the whole query,
// so a report is only returned when all three succeeded.
// Sibling requests are not cancelled when one fails.
func FetchProfile(ctx context.Context, client contract.GitHubClient, handle string, now time.Time) (*schema.ProfileReport, error) {
	var (
		user   schema.User
		repos  []schema.Repo
		events []schema.Event
		g      errgroup.Group
	)

	g.Go(func() error {
		var err error
		if user, err = client.GetUser(ctx, handle); err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if repos, err = client.ListRepos(ctx, handle, contract.MaxRepoLimit); err != nil {
			return fmt.Errorf("fetch repositories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if events, err = client.ListEvents(ctx, handle); err != nil {
			return fmt.Errorf("fetch events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	commits := agg.AggregateDaily(events, now)
	return &schema.ProfileReport{
		Handle:    handle,
		FetchedAt: now,
		User:      user,
		Repos:     repos,
		Events:    events,
		Commits:   commits,
		Summary:   agg.Summarize(commits),
	}, nil
}

// GetProfileResults validates the handle, prints the query header unless
// suppressed, and fetches the report for cfg.Handle.
func GetProfileResults(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) (*schema.ProfileReport, time.Duration, error) {
	start := time.Now()
	handle, err := contract.NormalizeHandle(cfg.Handle)
	if err != nil {
		return nil, 0, err
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogQueryHeader(cfg, handle)
	}
	report, err := FetchProfile(ctx, client, handle, cfg.Now())
	if err != nil {
		return nil, 0, err
	}
	return report, time.Since(start), nil
}

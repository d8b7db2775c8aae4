// Package agg has aggregation logic for account activity data.
package agg

import (
	"encoding/json"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// WindowDays is the length of the trailing window, ending at the reference day.
const WindowDays = 30

// CountedKind is the only event kind whose sub-items are counted.
const CountedKind = schema.PushEvent

// AggregateDaily sums commits of push events per calendar day and returns
// exactly WindowDays buckets in ascending date order, the last one being ref's day.
// Dates are computed in ref's location. Events outside the window are ignored.
func AggregateDaily(events []schema.Event, ref time.Time) []schema.DailyBucket {
	totals := buildDailyTotals(events, ref.Location())

	buckets := make([]schema.DailyBucket, WindowDays)
	for i := range WindowDays {
		date := ref.AddDate(0, 0, -(WindowDays - 1 - i)).Format(contract.DateFormat)
		buckets[i] = schema.DailyBucket{Date: date, Count: totals[date]}
	}
	return buckets
}

// buildDailyTotals maps a calendar date to the commit total of push events on it.
func buildDailyTotals(events []schema.Event, loc *time.Location) map[string]int {
	totals := make(map[string]int)
	for _, ev := range events {
		if ev.Type != CountedKind {
			continue
		}
		date := ev.CreatedAt.In(loc).Format(contract.DateFormat)
		totals[date] += CountSubItems(ev.Payload)
	}
	return totals
}

// pushPayload holds the only payload field we care about.
type pushPayload struct {
	Commits json.RawMessage `json:"commits"`
}

// CountSubItems returns the number of commits in a push payload.
// Missing, null or malformed payloads and commit fields count as zero.
func CountSubItems(payload json.RawMessage) int {
	if len(payload) == 0 {
		return 0
	}
	var p pushPayload
	if err := json.Unmarshal(payload, &p); err != nil || len(p.Commits) == 0 {
		return 0
	}
	var commits []json.RawMessage
	if err := json.Unmarshal(p.Commits, &commits); err != nil {
		return 0
	}
	return len(commits)
}

// Summarize computes the total, active days and peak day of a daily series.
// The earliest date wins a tie for the peak.
func Summarize(buckets []schema.DailyBucket) schema.HistogramSummary {
	var s schema.HistogramSummary
	for _, b := range buckets {
		s.Total += b.Count
		if b.Count > 0 {
			s.ActiveDays++
		}
		if b.Count > s.PeakCount {
			s.PeakCount = b.Count
			s.PeakDate = b.Date
		}
	}
	return s
}

// BuildTimeline converts the first limit events into timeline rows.
// Push events carry their commit count.
func BuildTimeline(events []schema.Event, limit int) []schema.TimelineEntry {
	n := min(len(events), max(limit, 0))
	entries := make([]schema.TimelineEntry, n)
	for i := range n {
		ev := events[i]
		entries[i] = schema.TimelineEntry{
			Type:      ev.Type,
			Repo:      ev.Repo.Name,
			CreatedAt: ev.CreatedAt,
		}
		if ev.Type == CountedKind {
			entries[i].Commits = CountSubItems(ev.Payload)
		}
	}
	return entries
}

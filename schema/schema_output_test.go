package schema_test

import (
	"testing"

	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestNewReposView(t *testing.T) {
	report := &schema.ProfileReport{
		Handle: "octocat",
		User:   schema.User{Login: "octocat", PublicRepos: 12},
		Repos:  []schema.Repo{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"limit below count", 2, 2},
		{"limit above count", 8, 3},
		{"zero limit", 0, 0},
		{"negative limit", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := schema.NewReposView(report, tt.limit)
			assert.Equal(t, tt.expected, view.Shown)
			assert.Len(t, view.Entries, tt.expected)
			assert.Equal(t, 12, view.Total, "Total is the account's public repository count")
			assert.Equal(t, "https://github.com/octocat?tab=repositories", view.AllURL)
		})
	}
}

func TestNewCommitsView(t *testing.T) {
	report := &schema.ProfileReport{
		Handle:  "octocat",
		Commits: []schema.DailyBucket{{Date: "2024-03-30", Count: 4}},
		Summary: schema.HistogramSummary{Total: 4, ActiveDays: 1, PeakDate: "2024-03-30", PeakCount: 4},
	}
	view := schema.NewCommitsView(report)
	assert.Equal(t, "octocat", view.Handle)
	assert.Equal(t, report.Commits, view.Commits)
	assert.Equal(t, 4, view.Summary.Total)
}

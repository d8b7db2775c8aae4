// Package schema has configs, models and constants for all parts of ghpulse.
package schema

import (
	"encoding/json"
	"time"
)

// User is the account profile returned by the users endpoint.
type User struct {
	Login       string `json:"login" yaml:"login"`
	Name        string `json:"name" yaml:"name"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL     string `json:"html_url" yaml:"html_url"`
	Bio         string `json:"bio" yaml:"bio"`
	PublicRepos int    `json:"public_repos" yaml:"public_repos"`
	Followers   int    `json:"followers" yaml:"followers"`
	Following   int    `json:"following" yaml:"following"`
}

// DisplayName returns the profile name, falling back to the login.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// ProfileURL returns the public profile page for the account.
func (u User) ProfileURL() string {
	if u.HTMLURL != "" {
		return u.HTMLURL
	}
	return WebBaseURL + "/" + u.Login
}

// RepositoriesURL returns the public repositories tab for the account.
func (u User) RepositoriesURL() string {
	return u.ProfileURL() + "?tab=repositories"
}

// Repo is a single repository owned by the account.
type Repo struct {
	ID              int64     `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	HTMLURL         string    `json:"html_url" yaml:"html_url"`
	Description     string    `json:"description" yaml:"description"`
	Language        string    `json:"language" yaml:"language"`
	StargazersCount int       `json:"stargazers_count" yaml:"stargazers_count"`
	ForksCount      int       `json:"forks_count" yaml:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
}

// EventRepo names the repository an event happened on.
type EventRepo struct {
	Name string `json:"name" yaml:"name"`
}

// Event is one entry of the public event feed.
// Payload is kept raw since its shape depends on Type.
type Event struct {
	Type      EventKind       `json:"type" yaml:"type"`
	Repo      EventRepo       `json:"repo" yaml:"repo"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Payload   json.RawMessage `json:"payload,omitempty" yaml:"-"`
}

// DailyBucket is the commit count for one calendar day.
type DailyBucket struct {
	Date  string `json:"date" yaml:"date"` // YYYY-MM-DD
	Count int    `json:"count" yaml:"count"`
}

// HistogramSummary condenses a daily series for display footers.
type HistogramSummary struct {
	Total      int    `json:"total" yaml:"total"`
	ActiveDays int    `json:"active_days" yaml:"active_days"`
	PeakDate   string `json:"peak_date,omitempty" yaml:"peak_date,omitempty"`
	PeakCount  int    `json:"peak_count" yaml:"peak_count"`
}

// TimelineEntry is a presentation row of the activity timeline.
type TimelineEntry struct {
	Type      EventKind `json:"type" yaml:"type"`
	Repo      string    `json:"repo" yaml:"repo"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Commits   int       `json:"commits,omitempty" yaml:"commits,omitempty"`
}

// ProfileReport is the result of one successful query.
// It only ever exists when all three fetches succeeded.
type ProfileReport struct {
	Handle    string           `json:"handle" yaml:"handle"`
	FetchedAt time.Time        `json:"fetched_at" yaml:"fetched_at"`
	User      User             `json:"user" yaml:"user"`
	Repos     []Repo           `json:"repos" yaml:"repos"`
	Events    []Event          `json:"events" yaml:"events"`
	Commits   []DailyBucket    `json:"commits" yaml:"commits"`
	Summary   HistogramSummary `json:"summary" yaml:"summary"`
}

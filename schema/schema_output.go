package schema

import "time"

// CommitsView is the histogram section of a report.
type CommitsView struct {
	Handle  string           `json:"handle" yaml:"handle"`
	Commits []DailyBucket    `json:"commits" yaml:"commits"`
	Summary HistogramSummary `json:"summary" yaml:"summary"`
}

// ActivityView is the activity tab: histogram plus timeline.
type ActivityView struct {
	CommitsView `yaml:",inline"`
	Timeline []TimelineEntry `json:"timeline" yaml:"timeline"`
}

// ReposView is the repository tab.
type ReposView struct {
	Handle  string `json:"handle" yaml:"handle"`
	Shown   int    `json:"shown" yaml:"shown"`
	Total   int    `json:"total" yaml:"total"` // public repositories of the account
	AllURL  string `json:"all_url" yaml:"all_url"`
	Entries []Repo `json:"repos" yaml:"repos"`
}

// NewCommitsView extracts the histogram section of a report.
func NewCommitsView(r *ProfileReport) CommitsView {
	return CommitsView{Handle: r.Handle, Commits: r.Commits, Summary: r.Summary}
}

// NewReposView keeps the first limit repositories of a report.
func NewReposView(r *ProfileReport, limit int) ReposView {
	n := min(len(r.Repos), max(limit, 0))
	return ReposView{
		Handle:  r.Handle,
		Shown:   n,
		Total:   r.User.PublicRepos,
		AllURL:  r.User.RepositoriesURL(),
		Entries: r.Repos[:n],
	}
}

// WatchUpdate is the outcome of one scheduled check of an account.
type WatchUpdate struct {
	Handle    string           `json:"handle" yaml:"handle"`
	CheckedAt time.Time        `json:"checked_at" yaml:"checked_at"`
	Summary   HistogramSummary `json:"summary" yaml:"summary"`
	Today     int              `json:"today" yaml:"today"`
	Delta     int              `json:"delta" yaml:"delta"` // change of Summary.Total since the previous check
	First     bool             `json:"first" yaml:"first"`
}

// Package parquet provides data structures and functions for exporting ghpulse
// report data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/ghpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// DailyCommits is one bucket of the commit histogram.
type DailyCommits struct {
	// Handle is the account the histogram belongs to
	Handle string `parquet:"handle,snappy"`

	// Date is the calendar day (midnight UTC)
	Date time.Time `parquet:"date,snappy"`

	// Commits is the number of pushed commits on that day
	Commits int32 `parquet:"commits,snappy"`
}

// Repository is one row of the repository listing.
type Repository struct {
	Handle      string    `parquet:"handle,snappy"`
	RepoID      int64     `parquet:"repo_id,snappy"`
	Name        string    `parquet:"name,snappy"`
	URL         string    `parquet:"url,snappy"`
	Description *string   `parquet:"description,optional,snappy"`
	Language    *string   `parquet:"language,optional,snappy"`
	Stars       int32     `parquet:"stars,snappy"`
	Forks       int32     `parquet:"forks,snappy"`
	UpdatedAt   time.Time `parquet:"updated_at,snappy"`
}

// ActivityEvent is one row of the public event feed.
type ActivityEvent struct {
	Handle    string    `parquet:"handle,snappy"`
	Type      string    `parquet:"type,snappy"`
	Repo      string    `parquet:"repo,snappy"`
	CreatedAt time.Time `parquet:"created_at,snappy"`
	Commits   int32     `parquet:"commits,snappy"`
}

// writeRows writes rows of any struct type to w using struct schema inference.
func writeRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeFile creates outputPath and writes rows to it.
func writeFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return writeRows(file, rows)
}

// WriteDailyCommitsParquet writes histogram rows to a Parquet file.
func WriteDailyCommitsParquet(data []DailyCommits, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteRepositoriesParquet writes repository rows to a Parquet file.
func WriteRepositoriesParquet(data []Repository, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteActivityEventsParquet writes event rows to a Parquet file.
func WriteActivityEventsParquet(data []ActivityEvent, outputPath string) error {
	return writeFile(data, outputPath)
}

// ConvertDailyBuckets converts histogram buckets to Parquet rows.
// Buckets with an unparsable date are skipped.
func ConvertDailyBuckets(handle string, buckets []schema.DailyBucket) []DailyCommits {
	result := make([]DailyCommits, 0, len(buckets))
	for _, b := range buckets {
		date, err := time.Parse(time.DateOnly, b.Date)
		if err != nil {
			continue
		}
		result = append(result, DailyCommits{Handle: handle, Date: date, Commits: int32(b.Count)})
	}
	return result
}

// ConvertRepos converts repositories to Parquet rows.
func ConvertRepos(handle string, repos []schema.Repo) []Repository {
	result := make([]Repository, len(repos))
	for i, r := range repos {
		result[i] = Repository{
			Handle:      handle,
			RepoID:      r.ID,
			Name:        r.Name,
			URL:         r.HTMLURL,
			Description: optionalString(r.Description),
			Language:    optionalString(r.Language),
			Stars:       int32(r.StargazersCount),
			Forks:       int32(r.ForksCount),
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return result
}

// ConvertTimeline converts timeline entries to Parquet rows.
func ConvertTimeline(handle string, entries []schema.TimelineEntry) []ActivityEvent {
	result := make([]ActivityEvent, len(entries))
	for i, e := range entries {
		result[i] = ActivityEvent{
			Handle:    handle,
			Type:      string(e.Type),
			Repo:      e.Repo,
			CreatedAt: e.CreatedAt,
			Commits:   int32(e.Commits),
		}
	}
	return result
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

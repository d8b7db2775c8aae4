package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/ghpulse/core/agg"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// reportView selects the structured view of a report section.
func reportView(report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection) any {
	switch section {
	case schema.ReposSection:
		return schema.NewReposView(report, cfg.RepoLimit)
	case schema.ActivitySection:
		return schema.ActivityView{
			CommitsView: schema.NewCommitsView(report),
			Timeline:    agg.BuildTimeline(report.Events, cfg.EventLimit),
		}
	case schema.CommitsSection:
		return schema.NewCommitsView(report)
	default:
		return report
	}
}

// writeJSONResultsForReport marshals the requested section of a report to JSON and writes it.
func writeJSONResultsForReport(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection) error {
	return writeJSON(w, reportView(report, cfg, section))
}

// writeYAMLResultsForReport marshals the requested section of a report to YAML and writes it.
func writeYAMLResultsForReport(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection) error {
	return writeYAML(w, reportView(report, cfg, section))
}

// writeCSVResultsForReport writes the requested section of a report as CSV.
// The full report has no single tabular shape, so it falls back to the histogram.
func writeCSVResultsForReport(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection) error {
	switch section {
	case schema.ReposSection:
		return writeCSVResultsForRepos(w, schema.NewReposView(report, cfg.RepoLimit))
	case schema.ActivitySection:
		return writeCSVResultsForTimeline(w, agg.BuildTimeline(report.Events, cfg.EventLimit))
	default:
		return writeCSVResultsForCommits(w, report.Commits)
	}
}

// writeCSVResultsForCommits writes one row per histogram day.
func writeCSVResultsForCommits(w io.Writer, buckets []schema.DailyBucket) error {
	return writeCSVWithHeader(w, []string{"date", "commits", "label"}, func(cw *csv.Writer) error {
		for _, b := range buckets {
			if err := cw.Write([]string{b.Date, strconv.Itoa(b.Count), contract.GetPlainLabel(b.Count)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVResultsForRepos writes the shown repositories.
func writeCSVResultsForRepos(w io.Writer, view schema.ReposView) error {
	header := []string{"name", "url", "description", "language", "stars", "forks", "updated_at"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range view.Entries {
			updated := ""
			if !r.UpdatedAt.IsZero() {
				updated = r.UpdatedAt.Format(contract.DateTimeFormat)
			}
			row := []string{
				r.Name,
				r.HTMLURL,
				r.Description,
				r.Language,
				strconv.Itoa(r.StargazersCount),
				strconv.Itoa(r.ForksCount),
				updated,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVResultsForTimeline writes the activity timeline.
func writeCSVResultsForTimeline(w io.Writer, entries []schema.TimelineEntry) error {
	return writeCSVWithHeader(w, []string{"type", "repo", "created_at", "commits"}, func(cw *csv.Writer) error {
		for _, e := range entries {
			row := []string{
				string(e.Type),
				e.Repo,
				e.CreatedAt.Format(contract.DateTimeFormat),
				strconv.Itoa(e.Commits),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/ghpulse/core/agg"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReportResults outputs a report section, dispatching based on the output format configured.
// Parquet output is file based and handled by WriteReportParquet.
func WriteReportResults(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForReport(w, report, cfg, section); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeYAMLResultsForReport(w, report, cfg, section); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForReport(w, report, cfg, section); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable text
		if err := writeReportText(w, report, cfg, section, duration); err != nil {
			return fmt.Errorf("error writing report output: %w", err)
		}
	}
	return nil
}

// writeReportText renders a section for the terminal.
func writeReportText(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection, duration time.Duration) error {
	var err error
	switch section {
	case schema.ReposSection:
		err = writeReposTable(w, report, cfg)
	case schema.ActivitySection:
		err = writeActivityText(w, report, cfg)
	case schema.CommitsSection:
		err = writeCommitHistogram(w, report, cfg)
	default:
		err = writeFullText(w, report, cfg, cfg.Tab)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Query completed in %v.\n", duration.Round(time.Millisecond))
	return err
}

// WriteView renders the profile card followed by the given tab.
// The interactive shell uses it to redraw after a tab switch.
func WriteView(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, tab schema.ViewTab) error {
	return writeFullText(w, report, cfg, tab)
}

// WriteQueryError renders the fixed user-facing message of a failed query.
func WriteQueryError(w io.Writer, err error, cfg *contract.Config) error {
	qe := contract.AsQueryError(err)
	msg := qe.Message()
	if cfg.UseEmojis {
		msg = contract.ErrorEmoji(qe.Kind) + " " + msg
	}
	if cfg.UseColors {
		msg = contract.ErrorColor.Sprint(msg)
	}
	_, werr := fmt.Fprintln(w, msg)
	return werr
}

func writeFullText(w io.Writer, report *schema.ProfileReport, cfg *contract.Config, tab schema.ViewTab) error {
	if err := writeProfileCard(w, report.User, cfg); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if tab == schema.ActivityTab {
		return writeActivityText(w, report, cfg)
	}
	return writeReposTable(w, report, cfg)
}

// writeProfileCard prints the name, link, bio and the three account counters.
func writeProfileCard(w io.Writer, user schema.User, cfg *contract.Config) error {
	bold := fmt.Sprint
	faint := fmt.Sprint
	if cfg.UseColors {
		bold = color.New(color.Bold).SprintFunc()
		faint = color.New(color.FgHiBlack).SprintFunc()
	}

	title := bold(user.DisplayName())
	if user.Name != "" && user.Name != user.Login {
		title += " (@" + user.Login + ")"
	}
	if cfg.UseEmojis {
		title = "🐙 " + title
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n", title, faint(user.ProfileURL())); err != nil {
		return err
	}
	if bio := strings.TrimSpace(user.Bio); bio != "" {
		if _, err := fmt.Fprintln(w, bio); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Repos", "Followers", "Following"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignCenter
	})
	if err := table.Append([]string{
		strconv.Itoa(user.PublicRepos),
		strconv.Itoa(user.Followers),
		strconv.Itoa(user.Following),
	}); err != nil {
		return err
	}
	return table.Render()
}

// writeReposTable prints the first cfg.RepoLimit repositories and a footer pointing at the full list.
func writeReposTable(w io.Writer, report *schema.ProfileReport, cfg *contract.Config) error {
	view := schema.NewReposView(report, cfg.RepoLimit)

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Name", "Stars", "Forks", "Language", "Updated", "Description"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignLeft
	})

	descWidth := GetMaxDescriptionWidth(cfg)
	var data [][]string
	for _, r := range view.Entries {
		desc := r.Description
		if desc == "" {
			desc = "No description available"
		}
		data = append(data, []string{
			r.Name,
			strconv.Itoa(r.StargazersCount),
			strconv.Itoa(r.ForksCount),
			r.Language,
			formatDate(r.UpdatedAt, cfg),
			contract.TruncateText(desc, descWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of %d repositories. View all on GitHub: %s\n", view.Shown, view.Total, view.AllURL)
	return err
}

// writeActivityText prints the commit histogram followed by the activity timeline.
func writeActivityText(w io.Writer, report *schema.ProfileReport, cfg *contract.Config) error {
	if err := writeCommitHistogram(w, report, cfg); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeTimeline(w, agg.BuildTimeline(report.Events, cfg.EventLimit), cfg)
}

// writeCommitHistogram prints one horizontal bar per day, scaled to the busiest day.
func writeCommitHistogram(w io.Writer, report *schema.ProfileReport, cfg *contract.Config) error {
	title := fmt.Sprintf("Commits in Last %d Days", agg.WindowDays)
	if cfg.UseEmojis {
		title = "📊 " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	width := GetMaxBarWidth(cfg)
	peak := 0
	for _, b := range report.Commits {
		peak = max(peak, b.Count)
	}

	for _, b := range report.Commits {
		label := contract.GetPlainLabel(b.Count)
		bar := renderBar(b.Count, peak, width)
		if cfg.UseColors {
			bar = contract.LabelColor(label).Sprint(bar)
			label = contract.GetColorLabel(b.Count)
		}
		if _, err := fmt.Fprintf(w, "%s │%s %d %s\n", shortDate(b.Date), bar, b.Count, label); err != nil {
			return err
		}
	}

	s := report.Summary
	if s.Total == 0 {
		_, err := fmt.Fprintf(w, "No pushed commits in the last %d days.\n", agg.WindowDays)
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %d commits over %d active days (peak %s with %d)\n", s.Total, s.ActiveDays, s.PeakDate, s.PeakCount)
	return err
}

// writeTimeline prints "<Type> on <repo>" lines with their local timestamp.
func writeTimeline(w io.Writer, entries []schema.TimelineEntry, cfg *contract.Config) error {
	title := "Activity Timeline"
	if cfg.UseEmojis {
		title = "🕒 " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No recent public activity.")
		return err
	}

	bold := fmt.Sprint
	if cfg.UseColors {
		bold = color.New(color.Bold).SprintFunc()
	}
	for _, e := range entries {
		line := fmt.Sprintf("● %s on %s", bold(string(e.Type)), bold(e.Repo))
		if e.Commits > 0 {
			line += fmt.Sprintf(" (%d commits)", e.Commits)
		}
		if _, err := fmt.Fprintf(w, "%s\n  %s\n", line, formatDateTime(e.CreatedAt, cfg)); err != nil {
			return err
		}
	}
	return nil
}

// renderBar returns a bar of up to width cells proportional to count/peak.
// Any non-zero count gets at least one cell.
func renderBar(count, peak, width int) string {
	if count <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	cells := max(count*width/peak, 1)
	return strings.Repeat("█", cells)
}

// shortDate turns YYYY-MM-DD into MM-DD for axis labels.
func shortDate(date string) string {
	if len(date) == len(contract.DateFormat) {
		return date[5:]
	}
	return date
}

func formatDate(t time.Time, cfg *contract.Config) string {
	if t.IsZero() {
		return ""
	}
	return inLocation(t, cfg).Format(contract.DateFormat)
}

func formatDateTime(t time.Time, cfg *contract.Config) string {
	return inLocation(t, cfg).Format(time.DateTime)
}

func inLocation(t time.Time, cfg *contract.Config) time.Time {
	if cfg.Location == nil {
		return t
	}
	return t.In(cfg.Location)
}

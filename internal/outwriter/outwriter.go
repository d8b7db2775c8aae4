// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/ghpulse/core/agg"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/parquet"
	"github.com/huangsam/ghpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a report section using the configured output format and destination.
func (ow *OutWriter) WriteReport(report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection, duration time.Duration) error {
	return PrintReportResults(report, cfg, section, duration)
}

// WriteError prints the user-facing message of a failed query to stderr.
func (ow *OutWriter) WriteError(err error, cfg *contract.Config) error {
	return WriteQueryError(os.Stderr, err, cfg)
}

// PrintReportResults sends a report section to cfg.OutputFile, or stdout when unset.
func PrintReportResults(report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		if err := WriteReportParquet(report, cfg, section); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet %s results to %s\n", sectionName(section), cfg.OutputFile)
		return nil
	case schema.JSONOut, schema.YAMLOut, schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteReportResults(w, report, cfg, section, duration)
		}, fmt.Sprintf("Wrote %s %s results", cfg.Output, sectionName(section)))
	default:
		return WriteReportResults(os.Stdout, report, cfg, section, duration)
	}
}

// WriteReportParquet exports a report section to cfg.OutputFile.
// The full report and commits sections export the histogram.
func WriteReportParquet(report *schema.ProfileReport, cfg *contract.Config, section schema.ReportSection) error {
	switch section {
	case schema.ReposSection:
		view := schema.NewReposView(report, cfg.RepoLimit)
		return parquet.WriteRepositoriesParquet(parquet.ConvertRepos(report.Handle, view.Entries), cfg.OutputFile)
	case schema.ActivitySection:
		timeline := agg.BuildTimeline(report.Events, cfg.EventLimit)
		return parquet.WriteActivityEventsParquet(parquet.ConvertTimeline(report.Handle, timeline), cfg.OutputFile)
	default:
		return parquet.WriteDailyCommitsParquet(parquet.ConvertDailyBuckets(report.Handle, report.Commits), cfg.OutputFile)
	}
}

func sectionName(section schema.ReportSection) string {
	if section == "" {
		return string(schema.FullSection)
	}
	return string(section)
}

package cmd

import (
	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/spf13/cobra"
)

// commitsCmd prints the 30-day commit histogram.
var commitsCmd = &cobra.Command{
	Use:   "commits <handle>",
	Short: "Count pushed commits per day over the last 30 days",
	Long: `Aggregate the public push events of an account into 30 daily buckets,
oldest first and ending today. Days without pushes are reported as zero.

Examples:
  # Draw the histogram in the terminal
  ghpulse commits octocat

  # Export the daily series as JSON
  ghpulse commits octocat --output json

  # Export the daily series to Parquet
  ghpulse commits octocat --output parquet --output-file commits.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCommits(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run commits query", err)
		}
	},
}

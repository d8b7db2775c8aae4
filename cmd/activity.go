package cmd

import (
	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/spf13/cobra"
)

// activityCmd shows the commit histogram and the activity timeline.
var activityCmd = &cobra.Command{
	Use:   "activity <handle>",
	Short: "Show the commit histogram and latest public events of an account",
	Long: `Show how many commits an account pushed on each of the last 30 days,
followed by a timeline of its most recent public events.

Only PushEvent entries count towards the histogram. Each event is assigned to
the calendar day of its timestamp in the configured --timezone.

Examples:
  # Show activity in the local time zone
  ghpulse activity octocat

  # Show the last 25 events with UTC days
  ghpulse activity octocat --event-limit 25 --timezone UTC

  # Export the timeline to CSV
  ghpulse activity octocat --output csv --output-file events.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run activity query", err)
		}
	},
}

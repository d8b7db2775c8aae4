package cmd

import (
	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/spf13/cobra"
)

// profileCmd shows the profile card followed by the active tab.
var profileCmd = &cobra.Command{
	Use:   "profile <handle>",
	Short: "Show a GitHub account's profile with its repositories or activity",
	Long: `Fetch the profile, repositories and public events of a GitHub account in parallel
and render the profile card followed by one tab.

The repos tab lists the most recently updated repositories with a link to the full list.
The activity tab shows the 30-day commit histogram and the latest public events.
If any of the three requests fails, nothing is shown except the error.

Examples:
  # Show the repository tab for octocat
  ghpulse profile octocat

  # Show the activity tab with dates in a specific time zone
  ghpulse profile octocat --tab activity --timezone America/New_York

  # Dump the whole report as JSON
  ghpulse profile @octocat --output json --output-file octocat.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run profile query", err)
		}
	},
}

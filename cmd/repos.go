package cmd

import (
	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reposCmd lists the most recently updated repositories of an account.
var reposCmd = &cobra.Command{
	Use:   "repos <handle>",
	Short: "List the most recently updated repositories of an account",
	Long: `List the repositories of a GitHub account, most recently updated first.

Only the first --repo-limit entries are shown, followed by the total count
and a link to the account's full repository list.

Examples:
  # Show the default 8 repositories
  ghpulse repos octocat

  # Export 25 repositories to CSV
  ghpulse repos octocat --repo-limit 25 --output csv --output-file repos.csv

  # Export to Parquet for offline analysis
  ghpulse repos octocat --output parquet --output-file repos.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRepos(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run repos query", err)
		}
	},
}

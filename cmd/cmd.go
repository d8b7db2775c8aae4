// Package cmd defines the command-line interface for ghpulse.
package cmd

import (
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("api-url", schema.DefaultAPIURL, "Base URL of the GitHub REST API")
	rootCmd.PersistentFlags().String("user-agent", contract.DefaultUserAgent, "User-Agent header sent upstream")
	rootCmd.PersistentFlags().String("timeout", "0", "Per-request timeout such as 10s (0 = wait forever)")
	rootCmd.PersistentFlags().Int("repo-limit", contract.DefaultRepoLimit, "Number of repositories to display")
	rootCmd.PersistentFlags().Int("event-limit", contract.DefaultEventLimit, "Number of timeline events to display")
	rootCmd.PersistentFlags().String("tab", string(schema.ReposTab), "Section shown below the profile card: repos or activity")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("timezone", "local", "IANA time zone used to assign events to calendar days")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of watchCmd to Viper
	watchCmd.Flags().String("schedule", contract.DefaultSchedule, "Cron expression or descriptor for repeated checks")
	if err := viper.BindPFlags(watchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding watch flags", err)
	}
}

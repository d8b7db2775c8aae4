package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/ghclient"
	"github.com/huangsam/ghpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// client is the upstream API client, built from the validated config.
var client contract.GitHubClient

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "ghpulse",
	Short:              "Look up a GitHub account's profile, repositories and recent activity.",
	Long:               `ghpulse fetches a public GitHub profile and shows its repositories, a 30-day commit histogram and the latest public events.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".ghpulse") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GHPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("api-url", schema.DefaultAPIURL)
	viper.SetDefault("user-agent", contract.DefaultUserAgent)
	viper.SetDefault("timeout", "0")
	viper.SetDefault("repo-limit", contract.DefaultRepoLimit)
	viper.SetDefault("event-limit", contract.DefaultEventLimit)
	viper.SetDefault("tab", schema.ReposTab)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("timezone", "local")
	viper.SetDefault("color", "yes")
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("schedule", contract.DefaultSchedule)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.HandleStr = ""
	if len(args) == 1 {
		input.HandleStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 5. Build the upstream client with validated config
	client = ghclient.NewRESTClientFromConfig(cfg)
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

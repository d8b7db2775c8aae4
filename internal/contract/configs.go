package contract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/ghpulse/schema"
	"github.com/robfig/cron/v3"
)

// Default values for configuration.
const (
	DefaultRepoLimit  = 8
	DefaultEventLimit = 10
	MaxRepoLimit      = 100 // one page of the repository listing
	MaxEventLimit     = 100
	DefaultUserAgent  = "ghpulse"
	DefaultSchedule   = "@every 15m"
)

// DateFormat is the calendar date representation used for buckets.
const DateFormat = time.DateOnly

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a query.
// This struct is the "final, validated" config.
type Config struct {
	Handle     string
	APIURL     string
	UserAgent  string
	Timeout    time.Duration // 0 waits forever
	RepoLimit  int           // repositories shown in the list
	EventLimit int           // events shown in the timeline
	Tab        schema.ViewTab
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Location   *time.Location
	Schedule   string // cron expression for the watch command

	UseColors bool // Enable colored output
	UseEmojis bool // Enable emojis in output headers
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	HandleStr string

	APIURL     string `mapstructure:"api-url"`
	UserAgent  string `mapstructure:"user-agent"`
	Timeout    string `mapstructure:"timeout"`
	RepoLimit  int    `mapstructure:"repo-limit"`
	EventLimit int    `mapstructure:"event-limit"`
	Tab        string `mapstructure:"tab"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Timezone   string `mapstructure:"timezone"`
	Schedule   string `mapstructure:"schedule"`
	Color      string `mapstructure:"color"`
	Emoji      string `mapstructure:"emoji"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Now returns the current time in the configured location.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processUpstream(cfg, input); err != nil {
		return err
	}
	if err := processTimezone(cfg, input); err != nil {
		return err
	}
	if err := processSchedule(cfg, input); err != nil {
		return err
	}
	if input.HandleStr != "" {
		handle, err := NormalizeHandle(input.HandleStr)
		if err != nil {
			return err
		}
		cfg.Handle = handle
	}
	return nil
}

// validateSimpleInputs processes and validates all presentation fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	if input.RepoLimit <= 0 || input.RepoLimit > MaxRepoLimit {
		return fmt.Errorf("repo-limit must be greater than 0 and cannot exceed %d (received %d)", MaxRepoLimit, input.RepoLimit)
	}
	cfg.RepoLimit = input.RepoLimit

	if input.EventLimit <= 0 || input.EventLimit > MaxEventLimit {
		return fmt.Errorf("event-limit must be greater than 0 and cannot exceed %d (received %d)", MaxEventLimit, input.EventLimit)
	}
	cfg.EventLimit = input.EventLimit

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	cfg.Tab = schema.ViewTab(strings.ToLower(input.Tab))
	if _, ok := schema.ValidViewTabs[cfg.Tab]; !ok {
		return fmt.Errorf("invalid tab '%s'. must be repos, activity", input.Tab)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using parquet output")
	}

	return nil
}

// processUpstream validates the API location and HTTP settings.
func processUpstream(cfg *Config, input *ConfigRawInput) error {
	apiURL := strings.TrimRight(strings.TrimSpace(input.APIURL), "/")
	if apiURL == "" {
		apiURL = schema.DefaultAPIURL
	}
	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api-url '%s'. must be an absolute http(s) URL", input.APIURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api-url scheme '%s'. must be http or https", u.Scheme)
	}
	cfg.APIURL = apiURL

	cfg.UserAgent = strings.TrimSpace(input.UserAgent)
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	cfg.Timeout = 0
	if s := strings.TrimSpace(input.Timeout); s != "" && s != "0" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("timeout cannot be negative (received %s)", input.Timeout)
		}
		cfg.Timeout = d
	}
	return nil
}

// processTimezone resolves the location used to compute calendar dates.
func processTimezone(cfg *Config, input *ConfigRawInput) error {
	tz := strings.TrimSpace(input.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		cfg.Location = time.Local
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", input.Timezone, err)
	}
	cfg.Location = loc
	return nil
}

// processSchedule validates the watch schedule, falling back to the default.
func processSchedule(cfg *Config, input *ConfigRawInput) error {
	expr := strings.TrimSpace(input.Schedule)
	if expr == "" {
		expr = DefaultSchedule
	}
	if _, err := ParseSchedule(expr); err != nil {
		return err
	}
	cfg.Schedule = expr
	return nil
}

// ParseSchedule parses a five-field cron expression or a descriptor such as "@hourly" or "@every 10m".
func ParseSchedule(expr string) (cron.Schedule, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule '%s': %w", expr, err)
	}
	return sched, nil
}

// NormalizeHandle trims and validates an account handle.
// Handles are alphanumeric with single inner hyphens, at most 39 characters.
func NormalizeHandle(s string) (string, error) {
	handle := strings.TrimPrefix(strings.TrimSpace(s), "@")
	if handle == "" {
		return "", fmt.Errorf("handle cannot be empty")
	}
	if len(handle) > 39 {
		return "", fmt.Errorf("handle '%s' is longer than 39 characters", handle)
	}
	if strings.HasPrefix(handle, "-") || strings.HasSuffix(handle, "-") || strings.Contains(handle, "--") {
		return "", fmt.Errorf("handle '%s' has a misplaced hyphen", handle)
	}
	for _, r := range handle {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != '-' {
			return "", fmt.Errorf("handle '%s' contains invalid character %q", handle, r)
		}
	}
	return handle, nil
}

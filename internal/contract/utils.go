package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/ghpulse/schema"
)

// Activity label constants.
const (
	BusyValue   = "Busy"
	SteadyValue = "Steady"
	LightValue  = "Light"
	QuietValue  = "Quiet"
)

// Color variables for console output.
var (
	BusyColor   = color.New(color.FgMagenta, color.Bold) // strongest signal
	SteadyColor = color.New(color.FgGreen)
	LightColor  = color.New(color.FgCyan)
	QuietColor  = color.New(color.FgHiBlack)
	ErrorColor  = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text label describing the commit volume of a day.
func GetPlainLabel(count int) string {
	switch {
	case count >= 10:
		return BusyValue
	case count >= 4:
		return SteadyValue
	case count >= 1:
		return LightValue
	default:
		return QuietValue
	}
}

// GetColorLabel returns a colored text label for console output.
func GetColorLabel(count int) string {
	text := GetPlainLabel(count)
	return LabelColor(text).Sprint(text)
}

// LabelColor returns the color associated with an activity label.
func LabelColor(label string) *color.Color {
	switch label {
	case BusyValue:
		return BusyColor
	case SteadyValue:
		return SteadyColor
	case LightValue:
		return LightColor
	default:
		return QuietColor
	}
}

// ErrorEmoji returns the emoji prefix matching an error category.
func ErrorEmoji(kind ErrorKind) string {
	switch kind {
	case NotFoundError:
		return "❌"
	case RateLimitError:
		return "🚫"
	default:
		return "⚠️ "
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogQueryHeader prints a concise header before a query runs.
func LogQueryHeader(cfg *Config, handle string) {
	if cfg.UseEmojis {
		fmt.Printf("🔎 Account: %s (API: %s)\n", handle, cfg.APIURL)
		return
	}
	fmt.Printf("Account: %s (API: %s)\n", handle, cfg.APIURL)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so the ellipsis always leaves room for content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseViewTab parses a tab name, accepting a leading colon as typed in the shell.
func ParseViewTab(s string) (schema.ViewTab, bool) {
	tab := schema.ViewTab(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ":")))
	_, ok := schema.ValidViewTabs[tab]
	return tab, ok
}

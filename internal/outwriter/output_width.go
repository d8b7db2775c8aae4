package outwriter

import (
	"os"

	"github.com/huangsam/ghpulse/internal/contract"
	"golang.org/x/term"
)

// Bar chart bounds.
const (
	minBarWidth = 10
	maxBarWidth = 60
)

// getTerminalWidth returns the width override, the detected terminal width,
// or a conservative default.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// GetMaxBarWidth calculates how many cells the longest histogram bar may use.
func GetMaxBarWidth(cfg *contract.Config) int {
	// Reserve space for "MM-DD │" on the left and " 123 Steady" on the right
	available := getTerminalWidth(cfg) - 24
	if available < minBarWidth {
		return minBarWidth
	}
	if available > maxBarWidth {
		return maxBarWidth
	}
	return available
}

// GetMaxDescriptionWidth calculates the width of the description column in the repository table.
func GetMaxDescriptionWidth(cfg *contract.Config) int {
	// Name + Stars + Forks + Language + Updated with borders/padding
	available := getTerminalWidth(cfg) - 70
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

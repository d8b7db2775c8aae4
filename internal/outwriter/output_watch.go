package outwriter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/huangsam/ghpulse/core/agg"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// WriteWatchUpdate writes one scheduled check. JSON output is one object per line.
func WriteWatchUpdate(w io.Writer, update schema.WatchUpdate, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return json.NewEncoder(w).Encode(update)
	case schema.YAMLOut:
		if _, err := fmt.Fprintln(w, "---"); err != nil {
			return err
		}
		return writeYAML(w, update)
	default:
		return writeWatchText(w, update, cfg)
	}
}

func writeWatchText(w io.Writer, update schema.WatchUpdate, cfg *contract.Config) error {
	s := update.Summary
	line := fmt.Sprintf("[%s] %s: %d commits in %d days over %d active days, %d today",
		inLocation(update.CheckedAt, cfg).Format(contract.DateTimeFormat), update.Handle,
		s.Total, agg.WindowDays, s.ActiveDays, update.Today)

	if !update.First {
		delta := fmt.Sprintf(" (%+d since last check)", update.Delta)
		if cfg.UseColors && update.Delta > 0 {
			delta = color.New(color.FgGreen).Sprint(delta)
		}
		line += delta
	}
	if cfg.UseEmojis {
		line = "🔁 " + line
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

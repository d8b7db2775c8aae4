package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/outwriter"
	"github.com/huangsam/ghpulse/schema"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

// watchCmd re-checks an account on a cron schedule.
var watchCmd = &cobra.Command{
	Use:   "watch <handle>",
	Short: "Re-check an account's commit activity on a schedule",
	Long: `Check an account right away, then again on every tick of --schedule,
printing one line per check with the 30-day total and the change since the
previous check. Failed checks print the error message and keep the schedule.

The schedule is a five-field cron expression or a descriptor such as
@hourly or "@every 10m". Unauthenticated requests are rate limited upstream,
so keep the interval generous.

Examples:
  # Check every 15 minutes (default)
  ghpulse watch octocat

  # Check at the top of every working hour
  ghpulse watch octocat --schedule "0 9-17 * * MON-FRI"

  # Stream checks as JSON lines
  ghpulse watch octocat --schedule "@every 30m" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runWatch(rootCtx, os.Stdout, cfg, client); err != nil {
			contract.LogFatal("Cannot run watch", err)
		}
	},
}

// runWatch checks once, then on every scheduled tick until SIGINT or SIGTERM.
func runWatch(ctx context.Context, out io.Writer, cfg *contract.Config, client contract.GitHubClient) error {
	if cfg.Output != schema.TextOut && cfg.Output != schema.JSONOut && cfg.Output != schema.YAMLOut {
		return fmt.Errorf("watch supports text, json or yaml output (received %s)", cfg.Output)
	}

	watcher := core.NewWatcher(cfg, client)
	job := func() {
		update, err := watcher.Check(ctx)
		if err != nil {
			_ = outwriter.WriteQueryError(os.Stderr, err, cfg)
			return
		}
		if err := outwriter.WriteWatchUpdate(out, update, cfg); err != nil {
			contract.LogWarn("Cannot write watch update", err)
		}
	}
	job()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(cfg.Schedule, job); err != nil {
		return fmt.Errorf("invalid schedule '%s': %w", cfg.Schedule, err)
	}
	c.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	<-c.Stop().Done()
	return nil
}

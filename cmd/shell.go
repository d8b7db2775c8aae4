package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/outwriter"
	"github.com/spf13/cobra"
)

const shellPrompt = "ghpulse> "

const shellHelp = `Enter a GitHub handle to look it up.
  :repos     show the repository tab
  :activity  show the commit histogram and timeline
  :help      show this message
  :quit      leave the shell`

// shellCmd starts an interactive lookup session.
var shellCmd = &cobra.Command{
	Use:   "shell [handle]",
	Short: "Look up accounts interactively and switch between tabs",
	Long: `Start an interactive session. Type a handle to look it up, then switch
between the repos and activity tabs without refetching.

Submitting the handle already on display does nothing. A failed lookup clears
the view and shows one of three messages: user not found, rate limit exceeded,
or a generic failure.

Examples:
  # Start empty
  ghpulse shell

  # Start with octocat loaded on the activity tab
  ghpulse shell octocat --tab activity`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		session := core.NewSession(cfg, client)
		if err := runShell(rootCtx, os.Stdin, os.Stdout, session, cfg); err != nil {
			contract.LogFatal("Cannot run shell", err)
		}
	},
}

// runShell reads commands from in until EOF or :quit.
// cfg.Handle, when set, is looked up before the first prompt.
func runShell(ctx context.Context, in io.Reader, out io.Writer, session *core.Session, cfg *contract.Config) error {
	if cfg.Handle != "" {
		if err := shellLookup(ctx, out, session, cfg, cfg.Handle); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, shellPrompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		var err error
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q" || line == ":exit":
			return nil
		case line == ":help":
			_, err = fmt.Fprintln(out, shellHelp)
		case strings.HasPrefix(line, ":"):
			tab, ok := contract.ParseViewTab(line)
			if !ok {
				_, err = fmt.Fprintf(out, "Unknown command %s. Type :help for usage.\n", line)
				break
			}
			session.SetTab(tab)
			err = shellRender(out, session, cfg)
		default:
			err = shellLookup(ctx, out, session, cfg, line)
		}
		if err != nil {
			return err
		}
	}
}

// shellLookup queries a handle and redraws when the view changed.
// Query failures are part of the view, not fatal to the shell.
func shellLookup(ctx context.Context, out io.Writer, session *core.Session, cfg *contract.Config, handle string) error {
	changed, err := session.Query(ctx, handle)
	if err != nil && !changed {
		_, werr := fmt.Fprintf(out, "Invalid handle: %v\n", err)
		return werr
	}
	if !changed {
		return nil
	}
	return shellRender(out, session, cfg)
}

// shellRender draws the current state of the session.
func shellRender(out io.Writer, session *core.Session, cfg *contract.Config) error {
	if err := session.Err(); err != nil {
		return outwriter.WriteQueryError(out, err, cfg)
	}
	report := session.Report()
	if report == nil {
		_, err := fmt.Fprintln(out, "No account loaded. Enter a handle to look it up.")
		return err
	}
	return outwriter.WriteView(out, report, cfg, session.Tab())
}

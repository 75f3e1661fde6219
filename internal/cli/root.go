package cli

import (
	"context"

	"github.com/spf13/cobra"

	"timeclock/internal/api"
	"timeclock/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tc",
		Short: "A billable-session timer for client work",
		Long: `Timeclock (tc) tracks a single billable work session per machine.

A session is associated with a customer and a project, can be paused and
resumed, and survives process restarts: elapsed time is always derived from
the persisted start timestamp, never from an in-process counter. Stopping a
session produces a finalized log with its billable duration and income, and
submits it to the configured billing service.

EXAMPLES:
  tc start --customer acme --project website "homepage redesign"
  tc status                        # Show the active session and elapsed time
  tc status --watch                # Live elapsed display, one line per second
  tc pause                         # Stop the clock without closing the session
  tc resume                        # Start the clock again
  tc note "reviewed pull requests" # Replace the session description
  tc stop                          # Finalize, compute income, submit the log
  tc clear                         # Abandon the session without billing it

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Store Configuration:
    TC_STORE_DIR                   Store directory (default: ~/.timeclock)
    TC_STORE_FILENAME              Store filename (default: timeclock.db)

  Billing Configuration:
    TC_BILLING_API_URL             Billing service base URL (empty: no submission)
    TC_BILLING_DEFAULT_RATE        Fallback hourly rate (default: 0)
    TC_BILLING_RATES               Per-customer rates, e.g. "acme=95,globex=120"

  Other:
    TC_USER                        Owner of tracked sessions (default: default)
    TC_TICK_INTERVAL               Notify period for watch mode (default: 1s)
    TC_APP_VERBOSE                 Enable debug logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(
		newStartCommand(root),
		newStatusCommand(root),
		newPauseCommand(root),
		newResumeCommand(root),
		newNoteCommand(root),
		newStopCommand(root),
		newClearCommand(root),
	)

	return root
}

// Execute runs the CLI with the given arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command, used by tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

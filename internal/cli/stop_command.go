package cli

import (
	"github.com/spf13/cobra"
)

// newStopCommand creates the stop command
func newStopCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Finalize the active session into a billable log",
		Long: `Finalize the active session: fold in any open pause interval, compute the
billable duration and income from the customer's hourly rate, and submit the
log to the configured billing service.

If the submission fails the finalized log is still shown; the session is
closed either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errorHandler := NewErrorHandler()

			result, err := root.api.StopTimer(cmd.Context())
			if result == nil {
				if err != nil {
					return errorHandler.Handle("stop session", err)
				}
				cmd.Println("No active session")
				return nil
			}

			log := result.Log
			cmd.Printf("Stopped session for customer %s\n", log.CustomerID)
			cmd.Printf("Billable time: %s (rate %s/h, income %s)\n",
				formatElapsed(log.Duration()), formatIncome(log.HourlyRate), formatIncome(log.Income))

			if err != nil {
				if errorHandler.IsRemoteAPIError(err) {
					cmd.PrintErrf("Warning: %s\n", errorHandler.Handle("submit log", err))
					return nil
				}
				return errorHandler.Handle("stop session", err)
			}

			if result.Stored != nil {
				cmd.Printf("Submitted log %s\n", result.Stored.ID)
			}
			return nil
		},
	}
}

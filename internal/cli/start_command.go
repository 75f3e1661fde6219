package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// newStartCommand creates the start command
func newStartCommand(root *RootCommand) *cobra.Command {
	var customerID, projectID, taskID string

	cmd := &cobra.Command{
		Use:   "start [description...]",
		Short: "Start a new billable session",
		Long: `Start a new billable session for a customer and project.

Any session already in flight is discarded without producing a log; its
unsaved time is lost. Stop or clear the current session first if that is
not what you want.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			errorHandler := NewErrorHandler()
			description := strings.Join(args, " ")

			previous, _ := root.api.CurrentTimer()

			timer, err := root.api.StartTimer(cmd.Context(), customerID, projectID, taskID, description)
			if err != nil {
				if errorHandler.IsStorageError(err) && timer != nil {
					// The session is running in memory; warn and carry on.
					cmd.PrintErrf("Warning: %s\n", errorHandler.Handle("persist session", err))
				} else {
					return errorHandler.Handle("start session", err)
				}
			}

			if previous != nil {
				cmd.Printf("Discarded unsaved session for customer %s\n", previous.CustomerID)
			}
			cmd.Printf("Started session for customer %s, project %s\n", timer.CustomerID, timer.ProjectID)
			if timer.Description != "" {
				cmd.Printf("Description: %s\n", timer.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&customerID, "customer", "c", "", "customer the session is billed to (required)")
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project the session belongs to (required)")
	cmd.Flags().StringVarP(&taskID, "task", "t", "", "task the session belongs to (optional)")

	return cmd
}

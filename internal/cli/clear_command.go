package cli

import (
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
)

// newClearCommand creates the clear command
func newClearCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Abandon the active session without billing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.api.State() == domain.StateIdle {
				cmd.Println("No active session")
				return nil
			}

			timer, _ := root.api.CurrentTimer()
			if err := root.api.DiscardTimer(cmd.Context()); err != nil {
				return NewErrorHandler().Handle("clear session", err)
			}

			cmd.Printf("Discarded session for customer %s; no log was produced\n", timer.CustomerID)
			return nil
		},
	}
}

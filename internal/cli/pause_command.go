package cli

import (
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
)

// newPauseCommand creates the pause command
func newPauseCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the active session's clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch root.api.State() {
			case domain.StateIdle:
				cmd.Println("No active session")
				return nil
			case domain.StatePaused:
				cmd.Println("Session is already paused")
				return nil
			}

			if err := root.api.PauseTimer(cmd.Context()); err != nil {
				return NewErrorHandler().Handle("pause session", err)
			}

			_, elapsed := root.api.CurrentTimer()
			cmd.Printf("Paused at %s\n", formatElapsed(elapsed))
			return nil
		},
	}
}

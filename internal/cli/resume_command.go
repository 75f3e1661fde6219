package cli

import (
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
)

// newResumeCommand creates the resume command
func newResumeCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch root.api.State() {
			case domain.StateIdle:
				cmd.Println("No active session")
				return nil
			case domain.StateRunning:
				cmd.Println("Session is not paused")
				return nil
			}

			if err := root.api.ResumeTimer(cmd.Context()); err != nil {
				return NewErrorHandler().Handle("resume session", err)
			}

			_, elapsed := root.api.CurrentTimer()
			cmd.Printf("Resumed at %s\n", formatElapsed(elapsed))
			return nil
		},
	}
}

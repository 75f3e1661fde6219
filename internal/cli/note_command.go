package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"timeclock/internal/domain"
)

// newNoteCommand creates the note command
func newNoteCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "note [text...]",
		Short: "Replace the active session's description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.api.State() == domain.StateIdle {
				cmd.Println("No active session")
				return nil
			}

			text := strings.Join(args, " ")
			if err := root.api.UpdateDescription(cmd.Context(), text); err != nil {
				return NewErrorHandler().Handle("update description", err)
			}

			cmd.Printf("Description updated: %s\n", text)
			return nil
		},
	}
}

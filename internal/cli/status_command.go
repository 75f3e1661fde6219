package cli

import (
	"time"

	"github.com/spf13/cobra"

	"timeclock/internal/domain"
)

// newStatusCommand creates the status command
func newStatusCommand(root *RootCommand) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active session and its elapsed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchStatus(cmd, root)
			}

			timer, elapsed := root.api.CurrentTimer()
			printStatus(cmd, timer, elapsed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the elapsed time on every tick until interrupted")

	return cmd
}

func printStatus(cmd *cobra.Command, timer *domain.ActiveTimer, elapsed time.Duration) {
	if timer == nil {
		cmd.Println("No active session")
		return
	}

	cmd.Printf("Customer:  %s\n", timer.CustomerID)
	cmd.Printf("Project:   %s\n", timer.ProjectID)
	if timer.TaskID != "" {
		cmd.Printf("Task:      %s\n", timer.TaskID)
	}
	if timer.Description != "" {
		cmd.Printf("Note:      %s\n", timer.Description)
	}
	cmd.Printf("State:     %s\n", timer.State())
	cmd.Printf("Elapsed:   %s\n", formatElapsed(elapsed))
}

// watchStatus subscribes to the engine's tick loop and prints one line per
// notification until the context is cancelled.
func watchStatus(cmd *cobra.Command, root *RootCommand) error {
	unsubscribe := root.api.Subscribe(func(timer *domain.ActiveTimer, elapsed time.Duration) {
		if timer == nil {
			cmd.Println("No active session")
			return
		}
		cmd.Printf("%s  %s / %s  %s\n", timer.State(), timer.CustomerID, timer.ProjectID, formatElapsed(elapsed))
	})
	defer unsubscribe()

	<-cmd.Context().Done()
	return nil
}

package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/tui"
)

func newFocusCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a Shadow Mode focus session",
		Long: `Start a countdown focus session. Finishing it awards the session XP;
sessions longer than 25 minutes earn a bonus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunFocus(ctx, svc, time.Duration(minutes)*time.Minute, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", engine.FocusDefaultMinutes, "Session length in minutes")

	return cmd
}

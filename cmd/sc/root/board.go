package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/scheduler"
	"github.com/talha426/Shadow-Console-Track/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive mission board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Period boundaries and diag retention are handled in the
			// background while the board is open.
			sched := scheduler.New(a.svc, a.diag, a.log, scheduler.Config{
				DiagRetention: a.cfg.DiagRetention,
			})
			sched.Start()
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				sched.Stop(stopCtx)
			}()

			return tui.RunBoard(ctx, a.svc, cmd.OutOrStdout())
		},
	}

	return cmd
}

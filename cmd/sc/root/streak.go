package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newStreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the completion streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			current := engine.CalculateStreak(tasks)
			best := engine.BestStreak(tasks, engine.BestStreakWindow)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFlame, "Streak"))
			fmt.Fprintln(out, ui.LabelValue("Current", ui.StreakText(current)))
			fmt.Fprintln(out, ui.LabelValue("Best (last 30 days)", best))
			return nil
		},
	}

	return cmd
}

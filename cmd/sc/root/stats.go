package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-category and per-rank aggregates",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Mission Stats"))
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("By category"))
			for _, g := range engine.AggregateByCategory(tasks) {
				fmt.Fprintf(out, "  %-12s %3d/%-3d  %4.0f%%  %s\n",
					g.Key, g.Completed, g.Total, g.CompletionRate*100,
					ui.Gold.Render(fmt.Sprintf("%d XP", g.XPEarned)))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("By rank"))
			for _, g := range engine.AggregateByPriority(tasks) {
				fmt.Fprintf(out, "  %s %3d/%-3d  %4.0f%%  %s\n",
					ui.PriorityBadge(g.Key), g.Completed, g.Total, g.CompletionRate*100,
					ui.Gold.Render(fmt.Sprintf("%d XP", g.XPEarned)))
			}
			return nil
		},
	}

	return cmd
}

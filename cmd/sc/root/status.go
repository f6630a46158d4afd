package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show operative level, rank and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Player(ctx)
			if err != nil {
				return err
			}
			info := engine.GetLevelInfo(p.TotalXP)
			rank := engine.GetRankInfo(p.TotalXP)

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			weeklyXP := engine.WeeklyXP(tasks)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMission, p.Name))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankTitle(rank.Title, rank.Color)))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s  %d/%d XP",
				info.Level, ui.XPBar(info.Progress/100, 24), info.CurrentXP, info.XPToNext)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Missions completed", p.CompletedTasks))
			fmt.Fprintln(out, ui.LabelValue("Weekly XP", weeklyXP))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d (best %d)", p.CurrentStreak, p.LongestStreak)))
			if rank.NextLevelXP > 0 {
				fmt.Fprintln(out, ui.Dim.Render(fmt.Sprintf("Next rank at %d XP", rank.NextLevelXP)))
			} else {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconCrown+" Top rank reached"))
			}
			return nil
		},
	}

	return cmd
}

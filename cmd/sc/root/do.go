package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a mission",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s level %d → %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			if res.Streak > 1 {
				fmt.Fprintln(out, ui.StreakText(res.Streak))
			}
			for _, q := range res.QuestsUnlocked {
				fmt.Fprintf(out, "%s Quest complete: %s %s\n",
					ui.IconScroll, q.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", q.XPReward)))
			}
			for _, a := range res.AchievementsUnlocked {
				fmt.Fprintf(out, "%s Achievement unlocked: %s %s %s\n",
					ui.IconTrophy, a.Icon, a.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", a.XPReward)))
			}
			return nil
		},
	}

	return cmd
}

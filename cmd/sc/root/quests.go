package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show daily and weekly quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			daily, weekly, err := svc.Quests(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printQuests(out, "Daily Quests", daily)
			fmt.Fprintln(out)
			printQuests(out, "Weekly Quests", weekly)
			return nil
		},
	}

	return cmd
}

func printQuests(out io.Writer, title string, quests []storage.Quest) {
	fmt.Fprintln(out, ui.Heading(ui.IconScroll, title))
	if len(quests) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(none)"))
		return
	}
	for _, q := range quests {
		mark := "  "
		if q.Completed {
			mark = ui.IconDone
		}
		fmt.Fprintf(out, "%s %s  %d/%d  %s\n",
			mark, q.Title, q.Current, q.Target,
			ui.Gold.Render(fmt.Sprintf("+%d XP", q.XPReward)))
		fmt.Fprintln(out, ui.Dim.Render("   "+q.Description+"  (until "+q.ExpiresAt.Format("Jan 2 15:04")+")"))
	}
}

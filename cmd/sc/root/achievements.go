package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unlocked := 0
			for _, a := range achievements {
				if a.Unlocked {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", unlocked, len(achievements))))
			for _, a := range achievements {
				switch {
				case a.Unlocked:
					when := ""
					if a.UnlockedAt != nil {
						when = ui.Dim.Render("  " + a.UnlockedAt.Format(dateLayout))
					}
					fmt.Fprintf(out, "%s %s — %s%s\n", a.Icon, ui.Good.Render(a.Title), ui.Dim.Render(a.Description), when)
				case all:
					fmt.Fprintf(out, "%s %s — %s\n", ui.IconLock, ui.Muted.Render(a.Title), ui.Dim.Render(a.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked achievements")

	return cmd
}

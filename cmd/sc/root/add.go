package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

const dateLayout = "2006-01-02"

func newAddCmd() *cobra.Command {
	var description string
	var category string
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a mission",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			p, err := engine.ParsePriority(priority)
			if err != nil {
				return err
			}
			in := engine.CreateTaskInput{
				Title:       args[0],
				Description: description,
				Category:    category,
				Priority:    p,
			}
			if due != "" {
				d, err := time.ParseInLocation(dateLayout, due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --due %q (want YYYY-MM-DD)", due)
				}
				in.DueDate = &d
			}

			t, err := svc.CreateTask(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.PriorityBadge(t.Priority),
				t.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d XP)", t.Category, t.XPValue)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Mission description")
	cmd.Flags().StringVarP(&category, "category", "c", "Work", "Mission category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "D", "Priority rank (E|D|C|B|A|S)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

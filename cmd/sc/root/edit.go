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

func newEditCmd() *cobra.Command {
	var title string
	var description string
	var category string
	var priority string
	var status string
	var due string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a mission (only the given flags change)",
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

			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &description
			}
			if cmd.Flags().Changed("category") {
				in.Category = &category
			}
			if cmd.Flags().Changed("priority") {
				p, err := engine.ParsePriority(priority)
				if err != nil {
					return err
				}
				in.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				st, err := engine.ParseStatus(status)
				if err != nil {
					return err
				}
				in.Status = &st
			}
			if cmd.Flags().Changed("due") {
				d, err := time.ParseInLocation(dateLayout, due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --due %q (want YYYY-MM-DD)", due)
				}
				in.DueDate = &d
			}

			t, err := svc.UpdateTask(ctx, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"),
				ui.PriorityBadge(t.Priority),
				t.Title,
				ui.StatusText(t.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority rank (E|D|C|B|A|S)")
	cmd.Flags().StringVar(&status, "status", "", "New status (pending|in-progress|completed)")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}

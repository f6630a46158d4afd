package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newListCmd() *cobra.Command {
	var search string
	var status string
	var category string
	var priority string
	var sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions with filters",
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

			f := engine.Filter{Search: search, Category: category}
			if status != "" {
				st, err := engine.ParseStatus(status)
				if err != nil {
					return err
				}
				f.Status = st
			}
			if priority != "" {
				p, err := engine.ParsePriority(priority)
				if err != nil {
					return err
				}
				f.Priority = p
			}

			tasks = engine.FilterTasks(tasks, f)
			tasks = engine.SortTasks(tasks, engine.SortBy(sortBy), !desc)

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no missions match)"))
				return nil
			}
			for _, t := range tasks {
				due := ""
				if t.DueDate != nil {
					due = ui.Dim.Render("  due " + t.DueDate.Format(dateLayout))
				}
				fmt.Fprintf(out, "%s %s  %s  %s  %s%s\n",
					ui.PriorityBadge(t.Priority),
					t.Title,
					ui.StatusText(t.Status),
					ui.Dim.Render(t.Category),
					ui.Gold.Render(fmt.Sprintf("%d XP", t.XPValue)),
					due)
				fmt.Fprintln(out, ui.Dim.Render("  id "+t.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Substring over title and description")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending|in-progress|completed)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority rank")
	cmd.Flags().StringVar(&sortBy, "sort", "createdAt", "Sort key (title|dueDate|priority|status|createdAt)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}

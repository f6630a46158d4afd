package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newDiagCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Show recent diagnostic entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.diag.Recent(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n, _ := a.diag.Size()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, fmt.Sprintf("Diagnostics (%d stored)", n)))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range entries {
				sev := ""
				if e.Severity != "" {
					sev = " " + severityText(e.Severity)
				}
				fmt.Fprintf(out, "%s  %-8s %-14s%s  %s\n",
					ui.Dim.Render(e.Time.Local().Format("Jan 2 15:04:05")),
					e.Kind, e.Action, sev, e.Message)
			}
			return nil
		},
	}

	cmd.AddCommand(newDiagCleanupCmd())
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")

	return cmd
}

func newDiagCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Drop diagnostic entries past the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cutoff := time.Now().Add(-a.cfg.DiagRetention)
			if err := a.diag.Cleanup(cutoff); err != nil {
				return err
			}
			n, _ := a.diag.Size()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconDone+" Cleaned"),
				ui.Muted.Render(fmt.Sprintf("(%d entries kept)", n)))
			return nil
		},
	}
}

func severityText(s diag.Severity) string {
	switch s {
	case diag.SeverityCritical, diag.SeverityHigh:
		return ui.Bad.Render(string(s))
	case diag.SeverityMedium:
		return ui.Warn.Render(string(s))
	default:
		return ui.Muted.Render(string(s))
	}
}

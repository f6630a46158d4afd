package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full store to a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := storage.Export(ctx, a.svc.DB())
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = storage.ExportFilename(time.Now())
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Exported"),
				outPath,
				ui.Muted.Render(fmt.Sprintf("(%d missions)", len(snap.Tasks))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: timestamped name)")

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup (replaces current data)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var snap storage.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("parse backup: %w", err)
			}
			if err := storage.Import(ctx, a.svc.DB(), &snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Imported"),
				args[0],
				ui.Muted.Render(fmt.Sprintf("(%d missions)", len(snap.Tasks))))
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/config"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}
			printSettings(cmd, store.Get())
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(), newSettingsResetCmd())
	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long:  "Keys: volume, soundEffects, notifications, animation, compactMode, autoSave (booleans); theme (light|dark|system); language.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			var applyErr error
			updated := store.Update(func(s *config.Settings) {
				applyErr = applySetting(s, key, value)
			})
			if applyErr != nil {
				return applyErr
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Saved"))
			printSettings(cmd, updated)
			return nil
		},
	}
}

func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}
			printSettings(cmd, store.Reset())
			return nil
		},
	}
}

func applySetting(s *config.Settings, key, value string) error {
	switch key {
	case "theme":
		switch value {
		case "light", "dark", "system":
			s.Theme = value
		default:
			return fmt.Errorf("invalid theme %q (light|dark|system)", value)
		}
		return nil
	case "language":
		s.Language = value
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s (want true/false)", value, key)
	}
	switch key {
	case "volume":
		s.Volume = b
	case "soundEffects":
		s.SoundEffects = b
	case "notifications":
		s.Notifications = b
	case "animation":
		s.Animations = b
	case "compactMode":
		s.CompactMode = b
	case "autoSave":
		s.AutoSave = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func printSettings(cmd *cobra.Command, s config.Settings) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading("⚙️", "Settings"))
	fmt.Fprintln(out, ui.LabelValue("volume", s.Volume))
	fmt.Fprintln(out, ui.LabelValue("soundEffects", s.SoundEffects))
	fmt.Fprintln(out, ui.LabelValue("theme", s.Theme))
	fmt.Fprintln(out, ui.LabelValue("notifications", s.Notifications))
	fmt.Fprintln(out, ui.LabelValue("animation", s.Animations))
	fmt.Fprintln(out, ui.LabelValue("compactMode", s.CompactMode))
	fmt.Fprintln(out, ui.LabelValue("language", s.Language))
	fmt.Fprintln(out, ui.LabelValue("autoSave", s.AutoSave))
}

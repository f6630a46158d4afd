package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sc",
	Short:         "Shadow Console — gamified mission tracker",
	Long:          "Shadow Console is a local-first CLI/TUI mission tracker with RPG progression: XP, levels, hunter ranks, quests and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newDoCmd(),
		newUndoCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newAchievementsCmd(),
		newStreakCmd(),
		newStatsCmd(),
		newFocusCmd(),
		newExportCmd(),
		newImportCmd(),
		newSettingsCmd(),
		newDiagCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove subjects or notes from the shelf",
	}

	cmd.AddCommand(newRemoveSubjectsCmd(), newRemoveNotesCmd())

	return cmd
}

func newRemoveSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "subjects <name>...",
		Aliases: []string{"subject"},
		Short:   "Delete subjects with everything they contain",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.RemoveSubjects(cmd.Context(), domain.RemoveSubjectsArgs{
				ShelfArgs: shelfRoot(),
				Subjects:  args,
			})
		},
	}
}

func newRemoveNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "notes <subject> <title>...",
		Aliases: []string{"note"},
		Short:   "Delete notes of a subject",
		Args:    cobra.MinimumNArgs(2), //nolint:mnd // subject and at least one title
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.RemoveNotes(cmd.Context(), domain.RemoveNotesArgs{
				ShelfArgs: shelfRoot(),
				Subject:   args[0],
				Titles:    args[1:],
				Extension: viper.GetString(noteExtensionConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

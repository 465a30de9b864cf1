package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

var addForceFlag bool

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add subjects or notes to the shelf",
	}

	cmd.AddCommand(newAddSubjectsCmd(), newAddNotesCmd())

	return cmd
}

func newAddSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "subjects <name>...",
		Aliases: []string{"subject"},
		Short:   "Create subjects and their missing parents",
		Long: `Create the directory of every subject, together with any parent subject
that does not exist yet.

` + subjectNamesHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.AddSubjects(cmd.Context(), domain.AddSubjectsArgs{
				ShelfArgs: shelfRoot(),
				Subjects:  args,
			})
		},
	}
}

func newAddNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes <subject> <title>...",
		Aliases: []string{"note"},
		Short:   "Create notes in a subject",
		Long: `Create one note file per title in the subject directory. The file is named
after the kebab-cased title. Existing notes are left alone unless --force
is given.`,
		Args: cobra.MinimumNArgs(2), //nolint:mnd // subject and at least one title
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.AddNotes(cmd.Context(), domain.AddNotesArgs{
				ShelfArgs: shelfRoot(),
				Subject:   args[0],
				Titles:    args[1:],
				Extension: viper.GetString(noteExtensionConfigKey),
				Force:     addForceFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&addForceFlag, forceFlagName, "f", false, "overwrite notes that already exist")

	return cmd
}

func init() {
	rootCmd.AddCommand(addCmd)
}

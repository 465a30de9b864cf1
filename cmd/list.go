package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [subject...]",
		Aliases: []string{"ls"},
		Short:   "List subjects and their notes",
		Long: `List the given subjects, or every subject on the shelf, with the note files
matched by the subject's file patterns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				ShelfArgs: shelfRoot(),
				Subjects:  args,
				Files:     viper.GetStringSlice(compileFilesConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

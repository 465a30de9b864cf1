package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lanoma.dev/pkg/lanoma/internal/domain"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

// moveCmd represents the move command.
var moveCmd = newMoveCmd()

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <new-location>",
		Short: "Move the shelf to a new location",
		Long: `Move the shelf directory to a new location and record the new location in
the configuration file, if there is one. The new location must not exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newRoot, err := workflow.Move(cmd.Context(), domain.MoveArgs{
				ShelfArgs: shelfRoot(),
				Target:    m.Path(args[0]),
			})
			if err != nil {
				return err
			}

			if err := saveShelfLocation(newRoot); err != nil {
				return fmt.Errorf("save shelf location: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the shelf and a default lanoma.yaml configuration file",
		Long: `Create a lanoma.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually, then create the shelf
directory if it does not exist yet. An existing configuration file is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)

			var exists viper.ConfigFileAlreadyExistsError
			if errors.As(err, &exists) {
				slog.Info("Keeping existing config file", "file", targetPath)
			} else if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return workflow.Init(cmd.Context(), domain.InitArgs{ShelfArgs: shelfRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

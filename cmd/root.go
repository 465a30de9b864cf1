// Package cmd provides the root command and CLI setup for lanoma.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	"lanoma.dev/pkg/lanoma/internal/controller"
	"lanoma.dev/pkg/lanoma/internal/domain"
)

var fsAdapter adapter.ShelfFSAdapter
var runnerAdapter adapter.CommandRunnerAdapter
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// shelfFlag overrides the shelf location from the config.
var shelfFlag string

// verboseFlag turns on debug logging.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalShelfFSAdapter()
	runnerAdapter = adapter.NewLocalCommandRunnerAdapter()
	orchestrator = domain.NewOrchestrator(fsAdapter, runnerAdapter)
	workflow = domain.NewWorkflow(fsAdapter, ui, orchestrator)
}

const subjectNamesHelp = `Subjects are named by their path on the shelf, for example
"Bachelor I/Semester I/Calculus". Every segment becomes one directory,
named after the kebab-cased segment. "." and ".." are resolved first.`

const rootLongDescription = `Lanoma manages a shelf of LaTeX notes grouped in nested subjects and
compiles them in parallel with a configurable build command.

` + subjectNamesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lanoma",
		Short:         "LaTeX note manager",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			slog.Debug("Running command", "command", cmd.CommandPath(), "shelf", viper.GetString(shelfConfigKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&shelfFlag, shelfFlagName, "s", defaultShelf, "location of the shelf")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(shelfFlagName), shelfConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

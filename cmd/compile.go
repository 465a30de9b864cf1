package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

var compileParallelFlag int
var compileCommandFlag string
var compileTimeoutFlag int
var compileFilesFlag []string

const compileLongDescription = `Compile notes by running the build command once per document inside the
subject directory. The placeholder {{note}} in the command is replaced by
the document path. Subjects are compiled one after the other, the documents
of a subject in parallel.

The command is taken from --command, then from the subject's info.yaml,
then from the compile.command setting. The command exits with an error when
every document of a subject failed.`

// compileCmd represents the compile command.
var compileCmd = newCompileCmd()

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile notes of one or more subjects",
		Long:  compileLongDescription,
	}

	configureCompileFlags(cmd)

	cmd.AddCommand(newCompileSubjectsCmd(), newCompileNotesCmd(), newCompileMasterCmd())

	return cmd
}

func configureCompileFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&compileParallelFlag, parallelFlagName, "p", defaultCompileThreads, "number of parallel workers per subject")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), compileThreadsConfigKey)

	cmd.PersistentFlags().IntVar(&compileTimeoutFlag, timeoutFlagName, defaultCompileTimeout, "seconds each document may take, 0 for no limit")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), compileTimeoutConfigKey)

	cmd.PersistentFlags().StringVarP(&compileCommandFlag, commandFlagName, "c", "", "build command template, e.g. \"pdflatex {{note}}\"")
}

func newCompileSubjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subjects <name>...",
		Aliases: []string{"subject"},
		Short:   "Compile the notes found in each subject",
		Long: `Compile every note of each subject. Notes are the files matching --files,
the subject's info.yaml files list or the compile.files setting, in that
order. Patterns support ** to match nested directories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compileArgs := newCompileArgs()
			compileArgs.Subjects = args
			compileArgs.Files = compileFilesFlag

			return workflow.Compile(cmd.Context(), compileArgs)
		},
	}

	cmd.Flags().StringArrayVar(&compileFilesFlag, filesFlagName, nil, "glob selecting the notes to compile (can be repeated)")

	return cmd
}

func newCompileNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "notes <subject> <title>...",
		Aliases: []string{"note"},
		Short:   "Compile the named notes of a subject",
		Args:    cobra.MinimumNArgs(2), //nolint:mnd // subject and at least one title
		RunE: func(cmd *cobra.Command, args []string) error {
			compileArgs := newCompileArgs()
			compileArgs.Subjects = args[:1]
			compileArgs.Notes = args[1:]

			return workflow.Compile(cmd.Context(), compileArgs)
		},
	}
}

func newCompileMasterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "master <subject>...",
		Short: "Compile the master document of each subject",
		Long: `Compile the master document (master.tex) of each subject. Subjects without
one are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compileArgs := newCompileArgs()
			compileArgs.Subjects = args
			compileArgs.Master = true

			return workflow.Compile(cmd.Context(), compileArgs)
		},
	}
}

func newCompileArgs() domain.CompileArgs {
	return domain.CompileArgs{
		ShelfArgs:      shelfRoot(),
		Command:        compileCommandFlag,
		DefaultCommand: viper.GetString(compileCommandConfigKey),
		DefaultFiles:   viper.GetStringSlice(compileFilesConfigKey),
		Extension:      viper.GetString(noteExtensionConfigKey),
		Threads:        viper.GetInt(compileThreadsConfigKey),
		Timeout:        time.Duration(viper.GetInt64(compileTimeoutConfigKey)) * time.Second,
	}
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

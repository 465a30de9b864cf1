package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const develVersion = "(devel)"

// buildVersion reports the module version lanoma was built from, falling back
// to develVersion for local builds.
func buildVersion(info *debug.BuildInfo, ok bool) (version, goVersion string) {
	if !ok || info == nil {
		return develVersion, "unknown"
	}

	version = info.Main.Version
	if version == "" {
		version = develVersion
	}

	return version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lanoma version",
		Long:  "Prints the lanoma release and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion(debug.ReadBuildInfo())

			cmd.Printf("lanoma %s (%s)\n", version, goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

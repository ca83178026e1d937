package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the graphsniper build",
		Long:  "Prints the graphsniper module version, the VCS revision it was built from and the Go toolchain.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range buildLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// buildLines renders the build information, skipping VCS fields that are absent.
func buildLines(info *debug.BuildInfo) []string {
	lines := []string{
		"graphsniper version\t " + info.Main.Version,
		"module\t " + info.Main.Path,
	}

	settings := map[string]string{}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; rev != "" {
		if settings["vcs.modified"] == "true" {
			rev += " (modified)"
		}

		lines = append(lines, "revision\t "+rev)
	}

	if at := settings["vcs.time"]; at != "" {
		lines = append(lines, "built\t "+at)
	}

	return append(lines, "go version\t "+info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"graphsniper.dev/pkg/graphsniper/internal/adapter"
	"graphsniper.dev/pkg/graphsniper/internal/domain"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

var extractFileFlag string
var excludePatterns []string
var includePatterns []string

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Extract GraphQL operations from local JavaScript files",
		Long:  extractLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resultFormat()
			if err != nil {
				return err
			}

			file := m.Path(extractFileFlag)
			if !cmd.Flags().Changed(formatFlagName) && file != "" {
				format = adapter.FormatForPath(file)
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Extract(cmd.Context(), domain.ExtractArgs{
				Paths:   parsePaths(args),
				Include: viper.GetStringSlice(collectPatternsKey),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				File:    file,
				Format:  format,
				Out:     cmd.OutOrStdout(),
			})
		},
	}

	configureExtractFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func configureExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&extractFileFlag, fileFlagName, "f", "", "write the result to this file instead of stdout")

	cmd.Flags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().StringSliceVar(&includePatterns, includeFlagName, adapter.DefaultIncludePatterns, "file name globs to scan")
	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), collectPatternsKey)
}

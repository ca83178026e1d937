package cmd

import (
	"github.com/spf13/cobra"

	"graphsniper.dev/pkg/graphsniper/internal/domain"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two saved results",
		Long: `Compare two saved results and list the operations that were added,
removed or changed, with a unified diff of every changed body.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Diff(cmd.Context(), domain.DiffArgs{Old: m.Path(args[0]), New: m.Path(args[1])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"graphsniper.dev/pkg/graphsniper/internal/domain"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <result>",
		Short: "View a saved result",
		Long:  "View a saved result with every operation, its variables and its pretty printed body.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{Result: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

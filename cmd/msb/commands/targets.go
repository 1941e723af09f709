package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets [projects...]",
		Short: "List the targets visible from each project",
		Long: "List the targets visible from each project, including targets pulled in through imports.\n" +
			"Without arguments the project given by --project is inspected.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				project, err := cmd.Flags().GetString("project")
				if err != nil {
					return err
				}
				paths = []string{project}
			}

			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			return c.app.Inspect(cmd.Context(), paths, format, cmd.OutOrStdout())
		},
	}
}

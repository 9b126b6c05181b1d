package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Compute used exports of shared dependencies for one build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Run(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return writeResult(cmd.OutOrStdout(), result, asJSON)
		},
	}
}

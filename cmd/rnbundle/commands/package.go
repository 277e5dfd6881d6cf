package commands

import "github.com/spf13/cobra"

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Write package.json so the output directory can be published to npm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Package(cmd.Context(), projectOptions(cmd))
			return err
		},
	}
}

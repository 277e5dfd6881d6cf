package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rnbundle/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Bundle the app, compile Hermes bytecode and write metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dev, _ := cmd.Flags().GetBool("dev")
			skipHermes, _ := cmd.Flags().GetBool("skip-hermes")
			_, err := c.app.Build(cmd.Context(), projectOptions(cmd), app.BuildOptions{
				Dev:        dev,
				SkipHermes: skipHermes,
			})
			return err
		},
	}
	cmd.Flags().Bool("dev", false, "Build an unminified development bundle (never compiled to bytecode)")
	cmd.Flags().Bool("skip-hermes", false, "Ship the production bundle as plain JavaScript")
	return cmd
}

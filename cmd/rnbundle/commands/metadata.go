package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rnbundle/internal/app"
)

func (c *CLI) newMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata [output-path]",
		Short: "Write metadata.json without running the bundler",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hermes, _ := cmd.Flags().GetBool("hermes-enabled")
			opts := app.MetadataOptions{HermesEnabled: hermes}
			if len(args) == 1 {
				opts.Output = args[0]
			}

			md, path, err := c.app.GenerateMetadata(cmd.Context(), projectOptions(cmd), opts)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(md, "", "  ")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Generated metadata.json:\n%s\n\nOutput: %s\n", data, path)
			return nil
		},
	}
	cmd.Flags().Bool("hermes-enabled", true, "Value recorded as hermesEnabled")
	return cmd
}

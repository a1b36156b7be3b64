package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/outfit/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove download scaffolding and partial files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetBool("manifest")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ModelsDir: modelsDir(cmd),
				Manifest:  manifest,
			})
		},
	}

	cmd.Flags().Bool("manifest", false, "Also remove the recorded file digests")

	return cmd
}

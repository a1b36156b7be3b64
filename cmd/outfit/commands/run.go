package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/outfit/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Install dependencies, fetch every model and verify the result",
		Args:  cobra.NoArgs,
		RunE:  c.runPipeline,
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-bootstrap", false, "Skip system and Python package installation")
	cmd.Flags().Bool("deep", false, "Compare each verified file against its recorded digest")
}

func (c *CLI) runPipeline(cmd *cobra.Command, _ []string) error {
	skipBootstrap, _ := cmd.Flags().GetBool("skip-bootstrap")
	deep, _ := cmd.Flags().GetBool("deep")

	return c.app.Run(cmd.Context(), app.RunOptions{
		ModelsDir:     modelsDir(cmd),
		SkipBootstrap: skipBootstrap,
		Deep:          deep,
	})
}

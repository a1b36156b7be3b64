package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/outfit/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the critical model files are present",
		Long: "Check that the critical model files are present.\n\n" +
			"Nothing is downloaded, and missing files do not change the exit status.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deep, _ := cmd.Flags().GetBool("deep")

			_, err := c.app.Verify(cmd.Context(), app.VerifyOptions{
				ModelsDir: modelsDir(cmd),
				Deep:      deep,
			})
			return err
		},
	}
	cmd.Flags().Bool("deep", false, "Compare each file against its recorded digest")
	return cmd
}

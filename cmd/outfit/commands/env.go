package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print shell exports for the model path variables",
		Example: `  eval "$(outfit env)"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hints, err := c.app.Env(modelsDir(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, h := range hints {
				_, _ = fmt.Fprintf(out, "export %s=%s\n", h.Name, shellQuote(h.Path))
			}
			return nil
		},
	}
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

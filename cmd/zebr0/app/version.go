package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createVersionCommand creates the version subcommand.
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zebr0 %s\n", a.version)
			if a.commit != "unknown" {
				fmt.Fprintf(out, "commit: %s\n", a.commit)
			}
			if a.date != "unknown" {
				fmt.Fprintf(out, "built: %s\n", a.date)
			}
		},
	}
}

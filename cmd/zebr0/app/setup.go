package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zebr0/zebr0-go"
	"github.com/zebr0/zebr0-go/params"
)

// createSetupCommand creates the setup subcommand, which bootstraps the
// local parameter cache.
func (a *App) createSetupCommand() *cobra.Command {
	var overrides params.Parameters
	var check string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or refresh the local parameter cache",
		Long: `Create or refresh the local parameter cache.

For each parameter, the value supplied on the command line wins, then the
previously cached value, then the built-in default. Running setup again with
no flags is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.Bootstrap(a.confDir, overrides)
			if err != nil {
				return err
			}

			a.logger.Debug("parameters saved",
				"dir", a.confDir,
				"url", p.URL,
				"project", p.Project,
				"stage", p.Stage,
			)

			if check == "" {
				return nil
			}

			// Resolve a key right away to prove the repository answers.
			client := zebr0.NewClient(zebr0.ClientConfig{Parameters: p, Logger: a.logger})
			value, err := client.Resolve(cmd.Context(), check)
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), value)
		},
	}

	cmd.Flags().StringVarP(&overrides.URL, "url", "u", "", "URL of the remote key-value repository")
	cmd.Flags().StringVarP(&overrides.Project, "project", "p", "", "project name, used as a fallback namespace")
	cmd.Flags().StringVarP(&overrides.Stage, "stage", "s", "", "deployment stage, used as the first namespace tried")
	cmd.Flags().StringVar(&check, "check", "", "resolve a key after setup and print its value")

	return cmd
}

// writeValue prints a resolved value followed by exactly one newline.
func writeValue(w io.Writer, value string) error {
	if len(value) > 0 && value[len(value)-1] == '\n' {
		_, err := fmt.Fprint(w, value)
		return err
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

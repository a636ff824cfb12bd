package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zebr0/zebr0-go"
)

// createTemplateCommand creates the template subcommand, which renders a
// text stream from stdin to stdout.
func (a *App) createTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Substitute {key} placeholders in a text stream",
		Long: `Read text from standard input, replace every {key} placeholder with the
key's resolved value (expanding placeholders inside substituted values too),
and write the result to standard output. Text outside placeholders passes
through unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read standard input: %w", err)
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			rendered, err := client.Apply(cmd.Context(), zebr0.FilterRender, string(text))
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

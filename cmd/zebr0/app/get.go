package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zebr0/zebr0-go"
)

// createGetCommand creates the get subcommand, which resolves one key and
// prints its (optionally filtered) value.
func (a *App) createGetCommand() *cobra.Command {
	var (
		defaultValue string
		filterName   string
		render       bool
		strip        bool
	)

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Resolve a key and print its value",
		Long: `Resolve a key and print its value.

The key is tried as "<stage>/<key>", then "<project>/<key>", then bare; the
first hit wins. With --default, a key absent at every tier yields the given
value instead of an error. The resolved value can be post-processed with
--filter (none, strip, render, json, sh, hash, lookup); --strip and --render
are shorthands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := zebr0.FilterNone
			switch {
			case filterName != "":
				var err error
				if filter, err = zebr0.ParseFilter(filterName); err != nil {
					return err
				}
			case render:
				filter = zebr0.FilterRender
			case strip:
				filter = zebr0.FilterStrip
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			var value string
			if cmd.Flags().Changed("default") {
				value, err = client.ResolveDefault(cmd.Context(), args[0], defaultValue)
			} else {
				value, err = client.Resolve(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			value, err = client.Apply(cmd.Context(), filter, value)
			if err != nil {
				return fmt.Errorf("filter %s: %w", filter, err)
			}

			return writeValue(cmd.OutOrStdout(), value)
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "value to print when the key is absent at every tier")
	cmd.Flags().StringVar(&filterName, "filter", "", "post-processing filter to apply")
	cmd.Flags().BoolVar(&render, "render", false, "shorthand for --filter render")
	cmd.Flags().BoolVar(&strip, "strip", false, "shorthand for --filter strip")

	return cmd
}

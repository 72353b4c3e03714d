package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addDiagram(topLevel *cobra.Command, opts *Options, load Loader) {
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render the twelve-house diagram as SVG.",
		Example: `
starlightctl diagram > houses.svg
starlightctl diagram house 7 --for 6f1c2a9e-0d4b-4c84-9a55-3f1e2b7c8d90
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load(cmd.Context(), *opts)
			if err != nil {
				return err
			}

			svg, err := deps.Diagram.SVG(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), svg)

			return nil
		},
	}

	owner := ""
	house := &cobra.Command{
		Use:   "house <1-12>",
		Short: "Print the detail shown when a house is activated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("house must be a number: %w", err)
			}

			deps, err := load(cmd.Context(), *opts)
			if err != nil {
				return err
			}

			detail, err := deps.Diagram.Detail(cmd.Context(), owner, number)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(detail.Lines(), "\n"))

			return nil
		},
	}

	house.Flags().StringVar(&owner, "for", "", "Visitor whose latest booking personalizes the detail.")

	cmd.AddCommand(house)
	topLevel.AddCommand(cmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewToolsCommand creates the tool catalog command.
func NewToolsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rootOpts.Client().ListTools(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "tools failed", err)
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd, catalog)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Available tools (%d):\n", len(catalog))
			for _, desc := range catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-30s %s\n", desc.Name, desc.Description)
			}
			return nil
		},
	}

	return cmd
}

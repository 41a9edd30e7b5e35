package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Long: `List all notes in insertion order.

Text output is the server's rendered listing; json output is the full
structured note records from the REST surface.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rootOpts.Client()

			if rootOpts.Format == "json" {
				all, err := c.Notes(cmd.Context())
				if err != nil {
					return WrapExitError(ExitCommandError, "list failed", err)
				}
				return printJSON(cmd, all)
			}

			resp, err := c.CallTool(cmd.Context(), "list_notes", nil)
			if err != nil {
				return WrapExitError(ExitCommandError, "list failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}
}

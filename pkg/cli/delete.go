package cli

import (
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), "delete_note", map[string]interface{}{"id": id})
			if err != nil {
				return WrapExitError(ExitCommandError, "delete failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}
}

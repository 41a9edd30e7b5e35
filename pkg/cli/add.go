package cli

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <content>",
		Short: "Add a new note",
		Long: `Add a new note with a title and content.

Example:
  scribectl add "Meeting Notes" "Discussed Q4 planning"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.Client().CallTool(cmd.Context(), "add_note", map[string]interface{}{
				"title":   args[0],
				"content": args[1],
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "add failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}
}

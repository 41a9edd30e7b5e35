package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c := rootOpts.Client()

			if rootOpts.Format == "json" {
				note, err := c.Note(cmd.Context(), id)
				if err != nil {
					return WrapExitError(ExitCommandError, "get failed", err)
				}
				return printJSON(cmd, note)
			}

			resp, err := c.CallTool(cmd.Context(), "get_note", map[string]interface{}{"id": id})
			if err != nil {
				return WrapExitError(ExitCommandError, "get failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}
}

// parseID parses a note id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, NewExitError(ExitCommandError, "note id must be an integer, got "+strconv.Quote(arg))
	}
	return id, nil
}

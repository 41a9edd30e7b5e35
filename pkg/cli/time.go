package cli

import (
	"github.com/spf13/cobra"
)

// NewTimeCommand creates the server clock command.
func NewTimeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Show the server's current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.Client().CallTool(cmd.Context(), "get_current_time", nil)
			if err != nil {
				return WrapExitError(ExitCommandError, "time failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	return cmd
}

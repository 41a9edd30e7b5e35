package cli

import (
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the storage statistics command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show storage statistics for the note store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Format == "json" {
				health, err := rootOpts.Client().Health(cmd.Context())
				if err != nil {
					return WrapExitError(ExitCommandError, "stats failed", err)
				}
				return printJSON(cmd, health.Storage)
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), "get_storage_info", nil)
			if err != nil {
				return WrapExitError(ExitCommandError, "stats failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	return cmd
}

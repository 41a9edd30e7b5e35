package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewCalcCommand creates the arithmetic evaluation command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression on the server",
		Long: `Evaluate a basic arithmetic expression on the server. The
expression may be given as one quoted argument or as several words.

Examples:
  scribectl calc '2 + 3 * 4'
  scribectl calc 15 / 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.Client().CallTool(cmd.Context(), "calculate", map[string]interface{}{
				"expression": strings.Join(args, " "),
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "calc failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	return cmd
}

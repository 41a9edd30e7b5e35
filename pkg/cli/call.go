package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// CallOptions holds flags for the call command.
type CallOptions struct {
	*RootOptions
	Args string
}

// NewCallCommand creates the raw tool invocation command.
func NewCallCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CallOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke a tool on the server by name",
		Long: `Invoke any registered tool directly, passing its arguments as JSON.

This is the escape hatch for tools that have no dedicated subcommand
and for scripting against the raw tool surface.

Example:
  scribectl call search_notes --args '{"keyword":"gym","search_in":"title"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var toolArgs map[string]interface{}
			if err := json.Unmarshal([]byte(opts.Args), &toolArgs); err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --args JSON: %v", err))
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return WrapExitError(ExitCommandError, "call failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	cmd.Flags().StringVar(&opts.Args, "args", "{}", "tool arguments as JSON")

	return cmd
}

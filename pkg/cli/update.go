package cli

import (
	"github.com/spf13/cobra"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	Title   string
	Content string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a note's title and/or content",
		Long: `Update a note. Only the fields given as flags change; the rest keep
their current values.

Example:
  scribectl update 3 --title "Renamed"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			toolArgs := map[string]interface{}{"id": id}
			if cmd.Flags().Changed("title") {
				toolArgs["title"] = opts.Title
			}
			if cmd.Flags().Changed("content") {
				toolArgs["content"] = opts.Content
			}
			if len(toolArgs) == 1 {
				return NewExitError(ExitCommandError, "nothing to update: pass --title and/or --content")
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), "update_note", toolArgs)
			if err != nil {
				return WrapExitError(ExitCommandError, "update failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().StringVar(&opts.Content, "content", "", "new content")

	return cmd
}

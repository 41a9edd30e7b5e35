package cli

import (
	"github.com/spf13/cobra"
)

// NewMentionsCommand creates the content-mention search command.
func NewMentionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mentions <reference>",
		Short: "Find notes that mention a date reference",
		Long: `Find notes that mention a date word or phrase anywhere in their
title or content, regardless of when they were created. Searching for
"tomorrow" returns notes that talk about tomorrow, not notes written
tomorrow.

Examples:
  scribectl mentions tomorrow
  scribectl mentions friday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.Client().CallTool(cmd.Context(), "search_notes_by_content_date", map[string]interface{}{
				"date_reference": args[0],
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "mentions failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	return cmd
}

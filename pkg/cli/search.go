package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/scribe/pkg/notes"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	In string
}

// NewSearchCommand creates the keyword search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search notes by keyword",
		Long: `Search notes for a keyword (case-insensitive substring match).

Example:
  scribectl search meeting --in title`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.In {
			case notes.SearchInTitle, notes.SearchInContent, notes.SearchInBoth:
			default:
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid --in %q: must be title, content, or both", opts.In))
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), "search_notes", map[string]interface{}{
				"keyword":   args[0],
				"search_in": opts.In,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "search failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	cmd.Flags().StringVar(&opts.In, "in", notes.SearchInBoth, "fields to search (title|content|both)")

	return cmd
}

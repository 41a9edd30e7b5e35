package cli

import (
	"github.com/spf13/cobra"
)

// SearchDateOptions holds flags for the search-date command.
type SearchDateOptions struct {
	*RootOptions
	Keyword string
}

// NewSearchDateCommand creates the temporal search command.
func NewSearchDateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchDateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search-date <filter>",
		Short: "Search notes by creation date",
		Long: `Search notes by a natural-language date filter.

Accepted filters: today, yesterday, tomorrow, this_week, last_week,
or an exact date in YYYY-MM-DD form. An optional keyword narrows the
results further.

Examples:
  scribectl search-date today
  scribectl search-date tomorrow --keyword standup
  scribectl search-date 2026-08-24`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]interface{}{
				"date_filter": args[0],
			}
			if opts.Keyword != "" {
				toolArgs["keyword"] = opts.Keyword
			}

			resp, err := rootOpts.Client().CallTool(cmd.Context(), "search_notes_by_date", toolArgs)
			if err != nil {
				return WrapExitError(ExitCommandError, "search-date failed", err)
			}
			return printResponse(cmd, rootOpts, resp)
		},
	}

	cmd.Flags().StringVarP(&opts.Keyword, "keyword", "k", "", "optional keyword to narrow results")

	return cmd
}

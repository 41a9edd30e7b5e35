package notetools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// SearchNotesByDateTool runs the temporal search over creation dates,
// including the fused "tomorrow" heuristic.
type SearchNotesByDateTool struct {
	store *notes.Store
}

// NewSearchNotesByDateTool creates a new SearchNotesByDateTool.
func NewSearchNotesByDateTool(store *notes.Store) *SearchNotesByDateTool {
	return &SearchNotesByDateTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *SearchNotesByDateTool) Name() string {
	return "search_notes_by_date"
}

// Description returns the tool description.
func (t *SearchNotesByDateTool) Description() string {
	return "Search notes by date (today, yesterday, tomorrow, week ranges, or a specific date) with optional keyword"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *SearchNotesByDateTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"date_filter": tools.StringProperty(
				"Date filter: 'today', 'yesterday', 'tomorrow', 'this week', 'last week', 'next week', or date in YYYY-MM-DD format"),
			"keyword": tools.StringProperty(
				"Optional keyword to search in note titles and content"),
		},
		"date_filter",
	)
}

// Execute resolves the date filter and renders matches with a short
// content preview for context.
func (t *SearchNotesByDateTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		DateFilter string `json:"date_filter"`
		Keyword    string `json:"keyword"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.DateFilter == "" {
		input.DateFilter = "today"
	}

	results := t.store.SearchByDate(input.DateFilter, input.Keyword)

	if len(results) == 0 {
		desc := fmt.Sprintf("'%s'", input.DateFilter)
		if input.Keyword != "" {
			desc += fmt.Sprintf(" with keyword '%s'", input.Keyword)
		}
		return tools.Textf("No notes found for %s.", desc), nil
	}

	lines := make([]string, 0, len(results)*2)
	for _, n := range results {
		lines = append(lines, noteLine(n))
		lines = append(lines, fmt.Sprintf("   Content: %s", preview(n.Content, 50)))
	}

	header := fmt.Sprintf("Search results for '%s'", input.DateFilter)
	if input.Keyword != "" {
		header += fmt.Sprintf(" + '%s'", input.Keyword)
	}

	return tools.Textf("%s:\n%s", header, strings.Join(lines, "\n")), nil
}

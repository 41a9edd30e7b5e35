package notetools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// SearchNotesTool runs keyword search scoped to title, content, or
// both.
type SearchNotesTool struct {
	store *notes.Store
}

// NewSearchNotesTool creates a new SearchNotesTool.
func NewSearchNotesTool(store *notes.Store) *SearchNotesTool {
	return &SearchNotesTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *SearchNotesTool) Name() string {
	return "search_notes"
}

// Description returns the tool description.
func (t *SearchNotesTool) Description() string {
	return "Search notes by keyword in title or content"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *SearchNotesTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"keyword": tools.StringProperty("Keyword to search for"),
			"search_in": tools.StringProperty(
				"Where to search: 'title', 'content', or 'both' (default)"),
		},
		"keyword",
	)
}

// Execute searches the selected fields for the keyword.
func (t *SearchNotesTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		Keyword  string `json:"keyword"`
		SearchIn string `json:"search_in"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.SearchIn == "" {
		input.SearchIn = notes.SearchInBoth
	}

	results, err := t.store.SearchByKeyword(input.Keyword, input.SearchIn)
	if err != nil {
		if errors.Is(err, notes.ErrValidation) {
			return tools.Errorf("Error: Keyword is required for search"), nil
		}
		return nil, err
	}

	if len(results) == 0 {
		return tools.Textf("No notes found containing '%s' in %s.", input.Keyword, input.SearchIn), nil
	}

	lines := make([]string, 0, len(results))
	for _, n := range results {
		lines = append(lines, noteLine(n))
	}

	return tools.Textf("Search results for '%s' in %s:\n%s",
		input.Keyword, input.SearchIn, strings.Join(lines, "\n")), nil
}

package notetools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// SearchNotesByContentDateTool finds notes that mention a date word in
// their text. Unlike search_notes_by_date it never looks at creation
// timestamps: "friday" here means notes that talk about Friday, not
// notes written on one.
type SearchNotesByContentDateTool struct {
	store *notes.Store
}

// NewSearchNotesByContentDateTool creates a new SearchNotesByContentDateTool.
func NewSearchNotesByContentDateTool(store *notes.Store) *SearchNotesByContentDateTool {
	return &SearchNotesByContentDateTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *SearchNotesByContentDateTool) Name() string {
	return "search_notes_by_content_date"
}

// Description returns the tool description.
func (t *SearchNotesByContentDateTool) Description() string {
	return "Find notes that mention a date reference (like 'tomorrow' or 'friday') in their text, regardless of creation date"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *SearchNotesByContentDateTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"date_reference": tools.StringProperty(
				"Date word or phrase to look for in note text"),
		},
		"date_reference",
	)
}

// Execute scans titles and content for the reference.
func (t *SearchNotesByContentDateTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		DateReference string `json:"date_reference"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.DateReference == "" {
		return tools.Errorf("Error: Date reference is required"), nil
	}

	results := t.store.SearchByContentDate(input.DateReference)

	if len(results) == 0 {
		return tools.Textf("No notes found mentioning '%s' in their content.", input.DateReference), nil
	}

	lines := make([]string, 0, len(results)*2)
	for _, n := range results {
		lines = append(lines, noteLine(n))
		lines = append(lines, fmt.Sprintf("   Content: %s", preview(n.Content, 100)))
	}

	return tools.Textf("Notes mentioning '%s':\n%s", input.DateReference, strings.Join(lines, "\n")), nil
}

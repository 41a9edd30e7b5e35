package notetools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// ListNotesTool lists all notes in insertion order.
type ListNotesTool struct {
	store *notes.Store
}

// NewListNotesTool creates a new ListNotesTool.
func NewListNotesTool(store *notes.Store) *ListNotesTool {
	return &ListNotesTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *ListNotesTool) Name() string {
	return "list_notes"
}

// Description returns the tool description.
func (t *ListNotesTool) Description() string {
	return "List all saved notes with their IDs, titles, and creation dates"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *ListNotesTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(map[string]interface{}{})
}

// Execute lists all notes.
func (t *ListNotesTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	list := t.store.List()
	if len(list) == 0 {
		return tools.Textf("No notes found."), nil
	}

	lines := make([]string, 0, len(list))
	for _, n := range list {
		lines = append(lines, noteLine(n))
	}

	return tools.Textf("Notes:\n%s", strings.Join(lines, "\n")), nil
}

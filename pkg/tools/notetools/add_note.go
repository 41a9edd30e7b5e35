package notetools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// AddNoteTool creates new notes in the store.
type AddNoteTool struct {
	store *notes.Store
}

// NewAddNoteTool creates a new AddNoteTool.
func NewAddNoteTool(store *notes.Store) *AddNoteTool {
	return &AddNoteTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *AddNoteTool) Name() string {
	return "add_note"
}

// Description returns the tool description.
func (t *AddNoteTool) Description() string {
	return "Add a new note with title and content (automatically saved to file)"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *AddNoteTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"title":   tools.StringProperty("Note title"),
			"content": tools.StringProperty("Note content"),
		},
		"title", "content",
	)
}

// Execute creates a new note and persists it.
func (t *AddNoteTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Title == "" || input.Content == "" {
		return tools.Errorf("Error: Both title and content are required"), nil
	}

	note, err := t.store.Add(input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	return tools.Textf("Note added successfully! ID: %d, Title: %s", note.ID, note.Title), nil
}

package notetools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// UpdateNoteTool applies partial updates to an existing note.
type UpdateNoteTool struct {
	store *notes.Store
}

// NewUpdateNoteTool creates a new UpdateNoteTool.
func NewUpdateNoteTool(store *notes.Store) *UpdateNoteTool {
	return &UpdateNoteTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *UpdateNoteTool) Name() string {
	return "update_note"
}

// Description returns the tool description.
func (t *UpdateNoteTool) Description() string {
	return "Update an existing note's title and/or content"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *UpdateNoteTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"id":      tools.StringProperty("Note ID"),
			"title":   tools.StringProperty("New title (optional)"),
			"content": tools.StringProperty("New content (optional)"),
		},
		"id",
	)
}

// Execute updates the given fields. Omitted fields keep their current
// values; the update timestamp always advances.
func (t *UpdateNoteTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		ID      NoteID  `json:"id"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	ok, err := t.store.Update(int(input.ID), input.Title, input.Content)
	if err != nil {
		return nil, err
	}
	if !ok {
		return tools.Errorf("Note with ID %d not found.", input.ID), nil
	}

	return tools.Textf("Note %d updated successfully!", input.ID), nil
}

package notetools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// DeleteNoteTool permanently removes a note.
type DeleteNoteTool struct {
	store *notes.Store
}

// NewDeleteNoteTool creates a new DeleteNoteTool.
func NewDeleteNoteTool(store *notes.Store) *DeleteNoteTool {
	return &DeleteNoteTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *DeleteNoteTool) Name() string {
	return "delete_note"
}

// Description returns the tool description.
func (t *DeleteNoteTool) Description() string {
	return "Delete a note by its ID (permanently removed from storage)"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *DeleteNoteTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"id": tools.StringProperty("Note ID to delete"),
		},
		"id",
	)
}

// Execute deletes the note. The freed id is never reassigned.
func (t *DeleteNoteTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		ID NoteID `json:"id"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	ok, err := t.store.Delete(int(input.ID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return tools.Errorf("Note with ID %d not found.", input.ID), nil
	}

	return tools.Textf("Note %d deleted successfully!", input.ID), nil
}

package notetools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// GetNoteTool fetches a single note by id.
type GetNoteTool struct {
	store *notes.Store
}

// NewGetNoteTool creates a new GetNoteTool.
func NewGetNoteTool(store *notes.Store) *GetNoteTool {
	return &GetNoteTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *GetNoteTool) Name() string {
	return "get_note"
}

// Description returns the tool description.
func (t *GetNoteTool) Description() string {
	return "Get a specific note by its ID"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *GetNoteTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"id": tools.StringProperty("Note ID"),
		},
		"id",
	)
}

// Execute fetches the note and renders its full detail.
func (t *GetNoteTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		ID NoteID `json:"id"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	note, ok := t.store.Get(int(input.ID))
	if !ok {
		return tools.Errorf("Note with ID %d not found.", input.ID), nil
	}

	detail := fmt.Sprintf("Note %d\nTitle: %s\nContent: %s\nCreated: %s\nUpdated: %s",
		note.ID,
		note.Title,
		note.Content,
		note.CreatedAt.Format(createdLayout),
		note.UpdatedAt.Format(createdLayout),
	)

	return &tools.Result{Text: detail}, nil
}

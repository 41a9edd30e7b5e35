// Package types defines the wire protocol shared by the scribe server,
// the HTTP client, and the chat front ends.
package types

import (
	"encoding/json"

	"github.com/entrhq/scribe/pkg/notes"
)

// ToolDescriptor describes a callable tool in the catalog returned by
// GET /tools.
type ToolDescriptor struct {
	// Name is the tool's unique identifier, e.g. "add_note".
	Name string `json:"name"`

	// Description is a human-readable summary of what the tool does.
	Description string `json:"description"`

	// InputSchema is the JSON schema for the tool's arguments object.
	InputSchema map[string]interface{} `json:"input_schema"`
}

// CallToolRequest is the body of POST /tools/call.
type CallToolRequest struct {
	// Name selects the tool to execute.
	Name string `json:"name"`

	// Arguments is the raw arguments object, decoded by the tool itself.
	Arguments json.RawMessage `json:"arguments"`
}

// ContentBlock is a single piece of tool output. Type is always "text".
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallToolResponse is the body returned by POST /tools/call. Tool
// failures travel inside the response with IsError set, not as HTTP
// errors.
type CallToolResponse struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"is_error"`
}

// NewTextResponse wraps plain text in a single-block response.
func NewTextResponse(text string, isError bool) *CallToolResponse {
	return &CallToolResponse{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: isError,
	}
}

// Text returns the concatenated text of all content blocks.
func (r *CallToolResponse) Text() string {
	switch len(r.Content) {
	case 0:
		return ""
	case 1:
		return r.Content[0].Text
	}
	var out string
	for _, block := range r.Content {
		out += block.Text
	}
	return out
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message string      `json:"message"`
	Version string      `json:"version"`
	Storage notes.Stats `json:"storage"`
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body of PUT /notes/:id. Nil fields are left
// unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error description for 4xx/5xx REST replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

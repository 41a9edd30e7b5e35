package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTextResponse(t *testing.T) {
	resp := NewTextResponse("hello", false)
	if len(resp.Content) != 1 {
		t.Fatalf("Content length = %d, want 1", len(resp.Content))
	}
	if resp.Content[0].Type != "text" {
		t.Errorf("Type = %q, want text", resp.Content[0].Type)
	}
	if resp.Content[0].Text != "hello" {
		t.Errorf("Text = %q, want hello", resp.Content[0].Text)
	}
	if resp.IsError {
		t.Error("IsError = true, want false")
	}
}

func TestCallToolResponse_Text(t *testing.T) {
	tests := []struct {
		name     string
		response CallToolResponse
		expected string
	}{
		{
			name:     "empty content",
			response: CallToolResponse{},
			expected: "",
		},
		{
			name: "single block",
			response: CallToolResponse{
				Content: []ContentBlock{{Type: "text", Text: "one"}},
			},
			expected: "one",
		},
		{
			name: "multiple blocks concatenated",
			response: CallToolResponse{
				Content: []ContentBlock{
					{Type: "text", Text: "one"},
					{Type: "text", Text: "two"},
				},
			},
			expected: "onetwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.response.Text(); got != tt.expected {
				t.Errorf("Text() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCallToolRequestWireShape(t *testing.T) {
	body := `{"name": "add_note", "arguments": {"title": "Groceries", "content": "Milk"}}`

	var req CallToolRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("failed to unmarshal request: %v", err)
	}
	if req.Name != "add_note" {
		t.Errorf("Name = %q, want add_note", req.Name)
	}

	var args struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		t.Fatalf("failed to unmarshal arguments: %v", err)
	}
	if args.Title != "Groceries" {
		t.Errorf("Title = %q, want Groceries", args.Title)
	}
}

func TestCallToolResponseJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewTextResponse("boom", true))
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}
	for _, field := range []string{`"content"`, `"is_error":true`, `"type":"text"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshaled response missing %s: %s", field, data)
		}
	}
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool represents a named operation that clients can invoke through the
// tool-call API. Arguments arrive as the raw JSON object from the wire
// request and are unmarshaled by each tool into its own argument
// struct.
type Tool interface {
	// Name returns the unique identifier for this tool (e.g., "add_note")
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON schema for this tool's input parameters
	Schema() map[string]interface{}

	// Execute runs the tool with the given JSON arguments.
	// Expected failures (validation, unknown ids, bad expressions) are
	// reported in the Result with IsError set; returned errors are
	// reserved for malformed arguments and infrastructure failures.
	Execute(ctx context.Context, args json.RawMessage) (*Result, error)
}

// Result is the outcome of a tool execution as shown to the caller.
type Result struct {
	// Text is the human-readable result body.
	Text string

	// IsError marks the result as a failure the caller should surface.
	IsError bool
}

// Textf builds a successful text result.
func Textf(format string, a ...interface{}) *Result {
	return &Result{Text: fmt.Sprintf(format, a...)}
}

// Errorf builds a failed text result.
func Errorf(format string, a ...interface{}) *Result {
	return &Result{Text: fmt.Sprintf(format, a...), IsError: true}
}

// ObjectSchema creates a common JSON schema structure for a tool with
// the given properties and required fields.
func ObjectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// StringProperty describes a string parameter for use in ObjectSchema.
func StringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

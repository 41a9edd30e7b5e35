package utility

import (
	"context"
	"encoding/json"
	"time"

	"github.com/entrhq/scribe/pkg/tools"
)

// CurrentTimeTool reports the server's current date and time.
type CurrentTimeTool struct {
	// now is stubbed in tests.
	now func() time.Time
}

// NewCurrentTimeTool creates a new CurrentTimeTool.
func NewCurrentTimeTool() *CurrentTimeTool {
	return &CurrentTimeTool{
		now: time.Now,
	}
}

// Name returns the tool name.
func (t *CurrentTimeTool) Name() string {
	return "get_current_time"
}

// Description returns the tool description.
func (t *CurrentTimeTool) Description() string {
	return "Get the current date and time"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *CurrentTimeTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(map[string]interface{}{})
}

// Execute reports the current time.
func (t *CurrentTimeTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	return tools.Textf("Current date and time: %s", t.now().Format(time.RFC3339)), nil
}

package utility

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/scribe/pkg/calc"
	"github.com/entrhq/scribe/pkg/tools"
)

// CalculateTool evaluates plain arithmetic expressions.
type CalculateTool struct{}

// NewCalculateTool creates a new CalculateTool.
func NewCalculateTool() *CalculateTool {
	return &CalculateTool{}
}

// Name returns the tool name.
func (t *CalculateTool) Name() string {
	return "calculate"
}

// Description returns the tool description.
func (t *CalculateTool) Description() string {
	return "Perform mathematical calculations"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *CalculateTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(
		map[string]interface{}{
			"expression": tools.StringProperty("Mathematical expression to evaluate"),
		},
		"expression",
	)
}

// Execute evaluates the expression.
func (t *CalculateTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	var input struct {
		Expression string `json:"expression"`
	}

	if err := json.Unmarshal(args, &input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Expression == "" {
		return tools.Errorf("Error: Expression is required"), nil
	}

	result, err := calc.Eval(input.Expression)
	if err != nil {
		return tools.Errorf("Calculation error: %v", err), nil
	}

	return tools.Textf("%s = %v", input.Expression, result), nil
}

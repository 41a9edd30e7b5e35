package utility

import (
	"github.com/entrhq/scribe/pkg/tools"
)

// All returns the utility tools.
func All() []tools.Tool {
	return []tools.Tool{
		NewCalculateTool(),
		NewCurrentTimeTool(),
	}
}

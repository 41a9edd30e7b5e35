package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ToolFilter decides which tools the server exposes, based on the glob
// patterns from tools.enabled.
type ToolFilter struct {
	patterns []glob.Glob
}

// NewToolFilter compiles the given glob patterns. An empty pattern list
// allows every tool.
func NewToolFilter(patterns []string) (*ToolFilter, error) {
	f := &ToolFilter{}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern '%s': %w", pattern, err)
		}
		f.patterns = append(f.patterns, g)
	}

	return f, nil
}

// Allows returns true if the tool name matches any enabled pattern.
func (f *ToolFilter) Allows(name string) bool {
	if len(f.patterns) == 0 {
		return true
	}

	for _, pattern := range f.patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}

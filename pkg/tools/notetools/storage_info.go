package notetools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// StorageInfoTool reports where notes are stored and basic statistics.
type StorageInfoTool struct {
	store *notes.Store
}

// NewStorageInfoTool creates a new StorageInfoTool.
func NewStorageInfoTool(store *notes.Store) *StorageInfoTool {
	return &StorageInfoTool{
		store: store,
	}
}

// Name returns the tool name.
func (t *StorageInfoTool) Name() string {
	return "get_storage_info"
}

// Description returns the tool description.
func (t *StorageInfoTool) Description() string {
	return "Get information about where notes are stored and storage statistics"
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *StorageInfoTool) Schema() map[string]interface{} {
	return tools.ObjectSchema(map[string]interface{}{})
}

// Execute renders the storage report.
func (t *StorageInfoTool) Execute(ctx context.Context, args json.RawMessage) (*tools.Result, error) {
	stats := t.store.Stats()

	lastUpdated := "never"
	if !stats.LastUpdated.IsZero() {
		lastUpdated = stats.LastUpdated.Format(time.RFC3339)
	}

	info := fmt.Sprintf("Storage Information:\n"+
		"Location: %s\n"+
		"Total Notes: %d\n"+
		"File Size: %d bytes\n"+
		"Last Updated: %s\n"+
		"\nAll notes are automatically saved to the JSON file above.",
		stats.StorageLocation,
		stats.TotalNotes,
		stats.FileSizeBytes,
		lastUpdated,
	)

	return &tools.Result{Text: info}, nil
}

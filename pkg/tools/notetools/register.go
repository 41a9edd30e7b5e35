package notetools

import (
	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/tools"
)

// All returns every note tool wired to the given store, in catalog
// order.
func All(store *notes.Store) []tools.Tool {
	return []tools.Tool{
		NewAddNoteTool(store),
		NewListNotesTool(store),
		NewGetNoteTool(store),
		NewUpdateNoteTool(store),
		NewDeleteNoteTool(store),
		NewSearchNotesTool(store),
		NewSearchNotesByDateTool(store),
		NewSearchNotesByContentDateTool(store),
		NewStorageInfoTool(store),
	}
}

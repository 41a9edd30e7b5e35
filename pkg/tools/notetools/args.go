package notetools

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/entrhq/scribe/pkg/notes"
)

// createdLayout is the timestamp format used in human-readable tool
// output.
const createdLayout = "2006-01-02 15:04"

// NoteID accepts both JSON numbers and numeric strings, since clients
// disagree about which form an id takes on the wire. A missing id
// decodes to zero, which no note ever has.
type NoteID int

// UnmarshalJSON implements json.Unmarshaler.
func (id *NoteID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = 0
		return nil
	}

	n, err := strconv.Atoi(string(trimmed))
	if err != nil {
		return fmt.Errorf("invalid note id %s", data)
	}
	*id = NoteID(n)
	return nil
}

// preview truncates note content for list-style output, by runes so
// multibyte text never gets split mid-character.
func preview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}

// noteLine renders the one-line summary used by listing and search
// output.
func noteLine(n *notes.Note) string {
	return fmt.Sprintf("ID: %d - %s (Created: %s)", n.ID, n.Title, n.CreatedAt.Format(createdLayout))
}

package notes

import (
	"fmt"
	"time"
)

// Note represents a single stored note with title, content, and timestamps.
type Note struct {
	ID        int       `json:"id"`         // Unique identifier, assigned from the store counter
	Title     string    `json:"title"`      // Note title (required, non-empty)
	Content   string    `json:"content"`    // Note content (required, non-empty)
	CreatedAt time.Time `json:"created_at"` // Creation timestamp, immutable
	UpdatedAt time.Time `json:"updated_at"` // Last update timestamp
}

// ValidateTitle checks that the title is non-empty.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: note title cannot be empty", ErrValidation)
	}
	return nil
}

// ValidateContent checks that the content is non-empty.
func ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("%w: note content cannot be empty", ErrValidation)
	}
	return nil
}

// clone returns a copy of the note so callers can't mutate store state.
func (n *Note) clone() *Note {
	c := *n
	return &c
}

// matchesKeyword checks if the note contains the keyword in the selected
// fields (case-insensitive substring containment).
func (n *Note) matchesKeyword(keyword, searchIn string) bool {
	switch searchIn {
	case SearchInTitle:
		return containsFold(n.Title, keyword)
	case SearchInContent:
		return containsFold(n.Content, keyword)
	default:
		return containsFold(n.Title, keyword) || containsFold(n.Content, keyword)
	}
}

// mentions checks if the note's title or content contains the given text
// (case-insensitive substring containment).
func (n *Note) mentions(text string) bool {
	return containsFold(n.Title, text) || containsFold(n.Content, text)
}

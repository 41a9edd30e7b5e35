package notes

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	// ErrValidation indicates a required field was missing or empty.
	ErrValidation = errors.New("notes: validation failed")

	// ErrStorage indicates a snapshot read or write failed at the
	// filesystem level. After a failed write the in-memory state has
	// already changed; the disk copy is stale until the next successful
	// persist. Callers should treat the operation result as real but
	// unconfirmed and may retry by issuing another mutation.
	ErrStorage = errors.New("notes: storage failure")
)

// Valid values for the searchIn parameter of SearchByKeyword.
const (
	SearchInTitle   = "title"
	SearchInContent = "content"
	SearchInBoth    = "both"
)

// Store owns an ordered collection of notes and its on-disk snapshot.
// Every mutation is persisted synchronously before it returns, so a
// returned operation is a durable one. All methods are safe for
// concurrent use; each operation holds the store lock for the full span
// of its in-memory change and the snapshot write.
type Store struct {
	mu          sync.Mutex
	path        string
	notes       []*Note
	counter     int
	lastUpdated time.Time

	// now is stubbed in tests to pin date-window computations.
	now func() time.Time
}

// New opens the store backed by the snapshot file at path. A missing or
// unreadable snapshot is not an error: the store starts empty with
// counter 1 and immediately writes a fresh snapshot so the file always
// exists after construction.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("notes: snapshot path cannot be empty")
	}

	s := &Store{
		path:    path,
		counter: 1,
		now:     time.Now,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Add creates a note with the next id and persists the snapshot.
// Validation failures leave the store untouched.
func (s *Store) Add(title, content string) (*Note, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	note := &Note{
		ID:        s.counter,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notes = append(s.notes, note)
	s.counter++

	if err := s.persist(); err != nil {
		return note.clone(), err
	}
	return note.clone(), nil
}

// Get retrieves a note by id. The second return value reports whether
// the note exists; a missing note is a normal negative result, not an
// error.
func (s *Store) Get(id int) (*Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n.clone(), true
		}
	}
	return nil, false
}

// Update applies a partial update to the note with the given id.
// Nil fields are left unchanged; UpdatedAt always advances on a hit.
// Returns false without error if the id does not exist.
func (s *Store) Update(id int, title, content *string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID != id {
			continue
		}

		if title != nil {
			n.Title = *title
		}
		if content != nil {
			n.Content = *content
		}
		n.UpdatedAt = s.now()

		if err := s.persist(); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// Delete removes the note with the given id. Returns false without
// error if the id does not exist. The id is never reused.
func (s *Store) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID != id {
			continue
		}

		s.notes = append(s.notes[:i], s.notes[i+1:]...)

		if err := s.persist(); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// List returns all notes in insertion order.
func (s *Store) List() []*Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cloneAll(s.notes)
}

// Count returns the number of stored notes.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notes)
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Stats describes the store for introspection endpoints.
type Stats struct {
	TotalNotes      int       `json:"total_notes"`
	StorageLocation string    `json:"storage_location"`
	FileSizeBytes   int64     `json:"file_size_bytes"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Stats reports the current note count, the snapshot location and size,
// and the time of the last successful persist.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var size int64
	if info, err := os.Stat(s.path); err == nil {
		size = info.Size()
	}

	return Stats{
		TotalNotes:      len(s.notes),
		StorageLocation: s.path,
		FileSizeBytes:   size,
		LastUpdated:     s.lastUpdated,
	}
}

// cloneAll copies a slice of notes for return to callers.
func (s *Store) cloneAll(src []*Note) []*Note {
	out := make([]*Note, len(src))
	for i, n := range src {
		out[i] = n.clone()
	}
	return out
}

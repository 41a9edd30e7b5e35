package notes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// snapshot is the on-disk representation of the whole store. It is
// rewritten wholesale on every mutation; readers of the file must
// tolerate full-file replacement between reads.
type snapshot struct {
	Notes       []*Note   `json:"notes"`
	Counter     int       `json:"counter"`
	LastUpdated time.Time `json:"last_updated"`
}

// load reads the snapshot file into the store. A missing file or a
// corrupt snapshot resets the store to empty with counter 1 and writes
// a fresh snapshot immediately, so startup never fails on bad data.
// Caller must not hold the lock.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err == nil {
		var snap snapshot
		if jsonErr := json.Unmarshal(data, &snap); jsonErr == nil {
			s.notes = snap.Notes
			s.counter = snap.Counter
			s.lastUpdated = snap.LastUpdated
			s.repairCounter()
			return nil
		} else {
			slog.Debug("notes: discarding corrupt snapshot", "path", s.path, "err", jsonErr)
		}
	} else if !os.IsNotExist(err) {
		slog.Debug("notes: discarding unreadable snapshot", "path", s.path, "err", err)
	}

	s.notes = nil
	s.counter = 1

	if err := s.persist(); err != nil {
		return err
	}
	return nil
}

// repairCounter restores the counter invariant (counter > every id)
// after loading a snapshot that was edited or truncated externally.
func (s *Store) repairCounter() {
	maxID := 0
	for _, n := range s.notes {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	if s.counter <= maxID {
		s.counter = maxID + 1
	}
	if s.counter < 1 {
		s.counter = 1
	}
}

// persist writes the full snapshot atomically: encode to a temp file
// next to the canonical path, then rename over it, so a crash mid-write
// never leaves a corrupt canonical file. Caller must hold the lock.
func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create data directory: %v", ErrStorage, err)
	}

	now := s.now()
	snap := snapshot{
		Notes:       s.notes,
		Counter:     s.counter,
		LastUpdated: now,
	}
	if snap.Notes == nil {
		snap.Notes = []*Note{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrStorage, err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("%w: write temp snapshot: %v", ErrStorage, err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("%w: replace snapshot %s: %v", ErrStorage, s.path, err)
	}

	s.lastUpdated = now
	return nil
}

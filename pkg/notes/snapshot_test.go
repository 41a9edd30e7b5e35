package notes

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	s, err := New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, err := s.Add("First", "alpha"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add("Second", "beta"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Delete(1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Add("Third", "gamma"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	reloaded, err := New(path)
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	want := s.List()
	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d notes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Content != want[i].Content {
			t.Errorf("note %d mismatch after reload: got %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Errorf("note %d CreatedAt changed across reload", i)
		}
	}

	// Counter survives: ids keep increasing after a reload.
	next, err := reloaded.Add("Fourth", "delta")
	if err != nil {
		t.Fatalf("add after reload failed: %v", err)
	}
	if next.ID != 4 {
		t.Errorf("id after reload = %d, want 4", next.ID)
	}
}

func TestSnapshotMissingFileInitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh", "notes.json")

	s, err := New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if s.Count() != 0 {
		t.Errorf("fresh store count = %d, want 0", s.Count())
	}

	// The initial snapshot is written immediately.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("initial snapshot missing: %v", err)
	}

	var snap struct {
		Notes   []*Note `json:"notes"`
		Counter int     `json:"counter"`
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("initial snapshot not valid JSON: %v", err)
	}
	if snap.Counter != 1 {
		t.Errorf("initial counter = %d, want 1", snap.Counter)
	}
	if snap.Notes == nil || len(snap.Notes) != 0 {
		t.Errorf("initial notes = %v, want empty list", snap.Notes)
	}
}

func TestSnapshotCorruptFileSelfHeals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to plant corrupt snapshot: %v", err)
	}

	s, err := New(path)
	if err != nil {
		t.Fatalf("corrupt snapshot should self-heal, got: %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0 after self-heal", s.Count())
	}

	// The corrupt file was replaced with a valid empty snapshot.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("healed snapshot missing: %v", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("healed snapshot not valid JSON: %v", err)
	}

	note, err := s.Add("Post-heal", "still works")
	if err != nil {
		t.Fatalf("add after self-heal failed: %v", err)
	}
	if note.ID != 1 {
		t.Errorf("id after self-heal = %d, want 1", note.ID)
	}
}

func TestSnapshotCounterRepair(t *testing.T) {
	tests := []struct {
		name       string
		counter    int
		wantNextID int
	}{
		{name: "counter behind max id", counter: 2, wantNextID: 8},
		{name: "counter equal to max id", counter: 7, wantNextID: 8},
		{name: "counter already valid", counter: 12, wantNextID: 12},
		{name: "nonsense counter", counter: -3, wantNextID: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "notes.json")

			planted := map[string]interface{}{
				"notes": []map[string]interface{}{
					{"id": 7, "title": "Existing", "content": "body",
						"created_at": "2024-03-01T10:00:00Z", "updated_at": "2024-03-01T10:00:00Z"},
				},
				"counter":      tt.counter,
				"last_updated": "2024-03-01T10:00:00Z",
			}
			data, err := json.Marshal(planted)
			if err != nil {
				t.Fatalf("failed to marshal snapshot: %v", err)
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatalf("failed to write snapshot: %v", err)
			}

			s, err := New(path)
			if err != nil {
				t.Fatalf("failed to load store: %v", err)
			}

			note, err := s.Add("New", "content")
			if err != nil {
				t.Fatalf("add failed: %v", err)
			}
			if note.ID != tt.wantNextID {
				t.Errorf("next id = %d, want %d", note.ID, tt.wantNextID)
			}
		})
	}
}

func TestSnapshotLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")

	s, err := New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := s.Add("Tidy", "no leftovers"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp snapshot file left behind after successful persist")
	}
}

package notetools

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/entrhq/scribe/pkg/tools"
)

// Volatile output: creation timestamps, the snapshot path, and the
// snapshot size change run to run and are replaced with placeholders.
var (
	datetimeRE  = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}`)
	timestampRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\S+`)
	locationRE  = regexp.MustCompile(`Location: .+`)
	sizeRE      = regexp.MustCompile(`File Size: \d+ bytes`)
)

func normalizeTranscript(s string) string {
	s = locationRE.ReplaceAllString(s, "Location: <path>")
	s = sizeRE.ReplaceAllString(s, "File Size: <size> bytes")
	s = timestampRE.ReplaceAllString(s, "<timestamp>")
	s = datetimeRE.ReplaceAllString(s, "<datetime>")
	return s
}

// The note lifecycle rendered through the tool surface is the output
// contract chat clients and the assistant see, so a full conversation
// is pinned as a golden file. Regenerate with
// go test ./pkg/tools/notetools -update after intentional wording
// changes.
func TestNoteToolTranscriptGolden(t *testing.T) {
	store := newStore(t)

	registry := tools.NewRegistry()
	for _, tool := range All(store) {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("failed to register %s: %v", tool.Name(), err)
		}
	}

	steps := []struct {
		tool string
		args string
	}{
		{"add_note", `{"title": "Standup", "content": "Agenda for tomorrow: demo the search work"}`},
		{"add_note", `{"title": "Groceries", "content": "Milk, eggs, coffee beans"}`},
		{"add_note", `{"title": "hollow"}`},
		{"list_notes", `{}`},
		{"get_note", `{"id": "1"}`},
		{"get_note", `{"id": 99}`},
		{"update_note", `{"id": 2, "title": "Groceries run"}`},
		{"search_notes", `{"keyword": "coffee"}`},
		{"search_notes", `{"keyword": "groceries", "search_in": "title"}`},
		{"search_notes_by_date", `{"date_filter": "today"}`},
		{"search_notes_by_date", `{"date_filter": "tomorrow", "keyword": "demo"}`},
		{"search_notes_by_content_date", `{"date_reference": "tomorrow"}`},
		{"delete_note", `{"id": 1}`},
		{"list_notes", `{}`},
		{"get_storage_info", `{}`},
	}

	var buf bytes.Buffer
	for _, step := range steps {
		tool, ok := registry.Get(step.tool)
		if !ok {
			t.Fatalf("tool %s not registered", step.tool)
		}

		result, err := tool.Execute(context.Background(), []byte(step.args))
		if err != nil {
			t.Fatalf("%s(%s) error = %v", step.tool, step.args, err)
		}

		fmt.Fprintf(&buf, ">> %s %s\n", step.tool, step.args)
		if result.IsError {
			fmt.Fprintf(&buf, "!! %s\n", result.Text)
		} else {
			fmt.Fprintf(&buf, "%s\n", result.Text)
		}
		buf.WriteByte('\n')
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "note_transcript", []byte(normalizeTranscript(buf.String())))
}

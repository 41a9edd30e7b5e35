package notetools

import (
	"context"
	"strings"
	"testing"
)

func TestSearchNotesByDateTool_Execute(t *testing.T) {
	store := newStore(t)
	tool := NewSearchNotesByDateTool(store)

	// Created now, so they match "today"; the first also mentions
	// "tomorrow" for the fused heuristic.
	if _, err := store.Add("Health", "Dentist appointment tomorrow at 3pm"); err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}
	if _, err := store.Add("Misc", "Water the plants"); err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	t.Run("today matches fresh notes", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{"date_filter": "today"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"Search results for 'today'", "ID: 1", "ID: 2", "Content:"} {
			if !strings.Contains(result.Text, want) {
				t.Errorf("Text missing %q:\n%s", want, result.Text)
			}
		}
	})

	t.Run("empty filter defaults to today", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(result.Text, "'today'") {
			t.Errorf("Text = %q, want default filter today", result.Text)
		}
	})

	t.Run("tomorrow fuses keyword with content mention", func(t *testing.T) {
		result, err := tool.Execute(context.Background(),
			[]byte(`{"date_filter": "tomorrow", "keyword": "dentist"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(result.Text, "ID: 1") {
			t.Errorf("content-mention note missing:\n%s", result.Text)
		}
		if strings.Contains(result.Text, "ID: 2") {
			t.Errorf("note without tomorrow evidence matched:\n%s", result.Text)
		}
	})

	t.Run("keyword narrows other filters independently", func(t *testing.T) {
		result, err := tool.Execute(context.Background(),
			[]byte(`{"date_filter": "today", "keyword": "plants"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if strings.Contains(result.Text, "ID: 1") || !strings.Contains(result.Text, "ID: 2") {
			t.Errorf("keyword filter applied wrong:\n%s", result.Text)
		}
	})

	t.Run("unknown filter reports no matches", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{"date_filter": "next month"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.IsError {
			t.Error("unparseable filters degrade to empty results, not errors")
		}
		if result.Text != "No notes found for 'next month'." {
			t.Errorf("Text = %q", result.Text)
		}
	})

	t.Run("no matches with keyword names both", func(t *testing.T) {
		result, err := tool.Execute(context.Background(),
			[]byte(`{"date_filter": "yesterday", "keyword": "gym"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Text != "No notes found for 'yesterday' with keyword 'gym'." {
			t.Errorf("Text = %q", result.Text)
		}
	})
}

func TestSearchNotesByContentDateTool_Execute(t *testing.T) {
	store := newStore(t)
	tool := NewSearchNotesByContentDateTool(store)

	if _, err := store.Add("Plans", "Dinner with Sam on friday"); err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	t.Run("mention match", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{"date_reference": "friday"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"Notes mentioning 'friday':", "ID: 1", "Content: Dinner with Sam on friday"} {
			if !strings.Contains(result.Text, want) {
				t.Errorf("Text missing %q:\n%s", want, result.Text)
			}
		}
	})

	t.Run("no mentions", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{"date_reference": "tuesday"}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Text != "No notes found mentioning 'tuesday' in their content." {
			t.Errorf("Text = %q", result.Text)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), []byte(`{}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !result.IsError || result.Text != "Error: Date reference is required" {
			t.Errorf("result = %+v", result)
		}
	})
}

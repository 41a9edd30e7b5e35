package notes

import (
	"errors"
	"testing"
	"time"
)

func TestStoreSearchByDate(t *testing.T) {
	s := newTestStore(t)

	monday := time.Date(2024, 3, 11, 8, 0, 0, 0, time.Local)
	wednesday := time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)
	sunday := time.Date(2024, 3, 17, 22, 0, 0, 0, time.Local)
	lastTuesday := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	nextMonday := time.Date(2024, 3, 18, 9, 0, 0, 0, time.Local)

	weekStart := addAt(t, s, "Week start", "standup agenda", monday)
	today := addAt(t, s, "Today", "review gym membership", wednesday)
	weekEnd := addAt(t, s, "Week end", "sunday wrap-up", sunday)
	older := addAt(t, s, "Older", "retro notes", lastTuesday)
	upcoming := addAt(t, s, "Upcoming", "kickoff prep", nextMonday)

	s.now = func() time.Time { return testNow }

	tests := []struct {
		name    string
		filter  string
		keyword string
		wantIDs []int
	}{
		{name: "today", filter: "today", wantIDs: []int{today.ID}},
		{name: "explicit date", filter: "2024-03-11", wantIDs: []int{weekStart.ID}},
		{name: "this week spans monday to sunday", filter: "this week", wantIDs: []int{weekStart.ID, today.ID, weekEnd.ID}},
		{name: "last week", filter: "last week", wantIDs: []int{older.ID}},
		{name: "next week", filter: "next week", wantIDs: []int{upcoming.ID}},
		{name: "keyword narrows date matches", filter: "this week", keyword: "gym", wantIDs: []int{today.ID}},
		{name: "keyword excludes date matches without it", filter: "2024-03-11", keyword: "gym", wantIDs: nil},
		{name: "unknown filter yields empty result", filter: "next month", wantIDs: nil},
		{name: "garbage filter yields empty result", filter: "13/03/2024", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SearchByDate(tt.filter, tt.keyword)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.wantIDs))
			}
			for i, n := range got {
				if n.ID != tt.wantIDs[i] {
					t.Errorf("result %d id = %d, want %d", i, n.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestStoreSearchByDateSmartTomorrow(t *testing.T) {
	s := newTestStore(t)

	createdToday := time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)
	createdTomorrow := time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local)

	mention := addAt(t, s, "Health", "Dentist appointment tomorrow at 3pm", createdToday)
	future := addAt(t, s, "Groceries", "Buy milk and eggs", createdTomorrow)
	unrelated := addAt(t, s, "Misc", "Water the plants", createdToday)

	s.now = func() time.Time { return testNow }

	t.Run("without keyword matches both evidence kinds", func(t *testing.T) {
		got := s.SearchByDate("tomorrow", "")
		wantIDs := []int{mention.ID, future.ID}

		if len(got) != len(wantIDs) {
			t.Fatalf("got %d notes, want %d", len(got), len(wantIDs))
		}
		for i, n := range got {
			if n.ID != wantIDs[i] {
				t.Errorf("result %d id = %d, want %d", i, n.ID, wantIDs[i])
			}
		}
	})

	t.Run("keyword is fused, not a second filter", func(t *testing.T) {
		got := s.SearchByDate("tomorrow", "dentist")

		if len(got) != 1 || got[0].ID != mention.ID {
			t.Fatalf("got %+v, want only the content-mention note %d", got, mention.ID)
		}
	})

	t.Run("tomorrow-created note without keyword is excluded", func(t *testing.T) {
		for _, n := range s.SearchByDate("tomorrow", "dentist") {
			if n.ID == future.ID {
				t.Error("creation date alone must not satisfy a keyworded tomorrow search")
			}
		}
	})

	t.Run("notes with no tomorrow evidence never match", func(t *testing.T) {
		for _, n := range s.SearchByDate("tomorrow", "") {
			if n.ID == unrelated.ID {
				t.Error("note without any tomorrow evidence matched")
			}
		}
	})
}

func TestStoreSearchByKeyword(t *testing.T) {
	s := newTestStore(t)

	titleHit, _ := s.Add("Gym schedule", "Leg day on Monday")
	contentHit, _ := s.Add("Reminders", "Renew gym membership")
	if _, err := s.Add("Cooking", "Pasta recipe"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tests := []struct {
		name     string
		keyword  string
		searchIn string
		wantIDs  []int
	}{
		{name: "both fields", keyword: "gym", searchIn: SearchInBoth, wantIDs: []int{titleHit.ID, contentHit.ID}},
		{name: "title only", keyword: "gym", searchIn: SearchInTitle, wantIDs: []int{titleHit.ID}},
		{name: "content only", keyword: "gym", searchIn: SearchInContent, wantIDs: []int{contentHit.ID}},
		{name: "case-insensitive", keyword: "GYM", searchIn: SearchInBoth, wantIDs: []int{titleHit.ID, contentHit.ID}},
		{name: "no matches", keyword: "swimming", searchIn: SearchInBoth, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchByKeyword(tt.keyword, tt.searchIn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.wantIDs))
			}
			for i, n := range got {
				if n.ID != tt.wantIDs[i] {
					t.Errorf("result %d id = %d, want %d", i, n.ID, tt.wantIDs[i])
				}
			}
		})
	}

	t.Run("empty keyword is a validation error", func(t *testing.T) {
		_, err := s.SearchByKeyword("", SearchInBoth)
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestStoreSearchByContentDate(t *testing.T) {
	s := newTestStore(t)

	friday, _ := s.Add("Plans", "Dinner with Sam on friday")
	titleRef, _ := s.Add("Friday review", "Covers the sprint")
	if _, err := s.Add("Misc", "Nothing datey here"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got := s.SearchByContentDate("Friday")
	wantIDs := []int{friday.ID, titleRef.ID}

	if len(got) != len(wantIDs) {
		t.Fatalf("got %d notes, want %d", len(got), len(wantIDs))
	}
	for i, n := range got {
		if n.ID != wantIDs[i] {
			t.Errorf("result %d id = %d, want %d", i, n.ID, wantIDs[i])
		}
	}

	// No creation-timestamp logic: a note created today mentioning
	// "friday" matches even though today is not Friday.
	if len(s.SearchByContentDate("tuesday")) != 0 {
		t.Error("unmentioned reference should match nothing")
	}
}

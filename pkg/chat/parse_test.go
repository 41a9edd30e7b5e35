package chat

import "testing"

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"get note 7", 7, true},
		{"delete note 12 now", 12, true},
		{"note 3 and note 5", 3, true},
		{"get note", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := extractNumber(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("extractNumber(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDetectDateFilter(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"show notes today", "today", true},
		{"today's meeting notes", "today", true},
		{"notes from yesterday", "yesterday", true},
		{"tomorrow's agenda notes", "tomorrow", true},
		{"show notes this week", "this week", true},
		{"show notes last week", "last week", true},
		{"notes next week", "next week", true},
		{"notes for the week", "this week", true},
		{"list notes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := detectDateFilter(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("detectDateFilter(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractDateKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"show notes today", ""},
		{"tomorrow meeting notes", "meeting"},
		{"yesterday's exam notes", "exam"},
		{"find notes from this week about standup", "standup"},
		{"show all notes last week", ""},
		{"today grocery shopping notes", "grocery shopping"},
	}

	for _, tt := range tests {
		if got := extractDateKeyword(tt.input); got != tt.want {
			t.Errorf("extractDateKeyword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractExpression(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{" 15 + 25 * 2", "15 + 25 * 2", true},
		{"(10 - 4) / 3", "(10 - 4) / 3", true},
		{"2+3", "2+3", true},
		{"no math here", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := extractExpression(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("extractExpression(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStripPhrases(t *testing.T) {
	tests := []struct {
		input   string
		phrases []string
		want    string
	}{
		{"Add Note: Standup: 9am", []string{"add note"}, ": Standup: 9am"},
		{"create note create note twice", []string{"create note"}, "twice"},
		{"nothing to strip", []string{"add note"}, "nothing to strip"},
	}

	for _, tt := range tests {
		if got := stripPhrases(tt.input, tt.phrases...); got != tt.want {
			t.Errorf("stripPhrases(%q, %v) = %q, want %q", tt.input, tt.phrases, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"meeting", "Meeting"},
		{"today's plan", "Today's plan"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := capitalize(tt.input); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

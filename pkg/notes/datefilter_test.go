package notes

import (
	"testing"
	"time"
)

// Wednesday, 13 March 2024. This week runs Mon 11th through Sun 17th.
var testNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.Local)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveDateFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		wantMode   matchMode
		wantTarget time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{name: "today", filter: "today", wantMode: modeExact, wantTarget: date(2024, 3, 13)},
		{name: "yesterday", filter: "yesterday", wantMode: modeExact, wantTarget: date(2024, 3, 12)},
		{name: "tomorrow", filter: "tomorrow", wantMode: modeSmartTomorrow, wantTarget: date(2024, 3, 14)},
		{name: "this week", filter: "this week", wantMode: modeRange, wantStart: date(2024, 3, 11), wantEnd: date(2024, 3, 17)},
		{name: "last week", filter: "last week", wantMode: modeRange, wantStart: date(2024, 3, 4), wantEnd: date(2024, 3, 10)},
		{name: "next week", filter: "next week", wantMode: modeRange, wantStart: date(2024, 3, 18), wantEnd: date(2024, 3, 24)},
		{name: "explicit date", filter: "2024-01-05", wantMode: modeExact, wantTarget: date(2024, 1, 5)},
		{name: "case and whitespace", filter: "  This Week ", wantMode: modeRange, wantStart: date(2024, 3, 11), wantEnd: date(2024, 3, 17)},
		{name: "unknown phrase", filter: "next month", wantMode: modeNone},
		{name: "garbage", filter: "02/13/2024", wantMode: modeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := resolveDateFilter(tt.filter, testNow)

			if m.mode != tt.wantMode {
				t.Fatalf("mode = %v, want %v", m.mode, tt.wantMode)
			}
			if !tt.wantTarget.IsZero() && !m.target.Equal(tt.wantTarget) {
				t.Errorf("target = %v, want %v", m.target, tt.wantTarget)
			}
			if !tt.wantStart.IsZero() && !m.start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", m.start, tt.wantStart)
			}
			if !tt.wantEnd.IsZero() && !m.end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", m.end, tt.wantEnd)
			}
		})
	}
}

func TestMondayOfWeekEdges(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{name: "monday maps to itself", day: date(2024, 3, 11), want: date(2024, 3, 11)},
		{name: "sunday belongs to preceding monday", day: date(2024, 3, 17), want: date(2024, 3, 11)},
		{name: "midweek", day: date(2024, 3, 13), want: date(2024, 3, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mondayOf(tt.day); !got.Equal(tt.want) {
				t.Errorf("mondayOf(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestRangeMatchIncludesBoundaries(t *testing.T) {
	m := resolveDateFilter("this week", testNow)

	tests := []struct {
		name    string
		created time.Time
		want    bool
	}{
		{name: "exact monday start", created: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), want: true},
		{name: "exact sunday end of day", created: time.Date(2024, 3, 17, 23, 59, 59, 0, time.Local), want: true},
		{name: "sunday before the window", created: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local), want: false},
		{name: "monday after the window", created: time.Date(2024, 3, 18, 0, 0, 0, 0, time.Local), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Note{Title: "x", Content: "y", CreatedAt: tt.created}
			if got := m.matchesDate(n); got != tt.want {
				t.Errorf("matchesDate(%v) = %v, want %v", tt.created, got, tt.want)
			}
		})
	}
}

func TestMatchesSmartTomorrow(t *testing.T) {
	tomorrow := date(2024, 3, 14)
	createdToday := time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)
	createdTomorrow := time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		note    *Note
		keyword string
		want    bool
	}{
		{
			name:    "no keyword, created tomorrow",
			note:    &Note{Title: "Planning", Content: "unrelated", CreatedAt: createdTomorrow},
			keyword: "",
			want:    true,
		},
		{
			name:    "no keyword, mentions tomorrow",
			note:    &Note{Title: "Reminder", Content: "Call mom tomorrow", CreatedAt: createdToday},
			keyword: "",
			want:    true,
		},
		{
			name:    "no keyword, neither",
			note:    &Note{Title: "Reminder", Content: "Call mom friday", CreatedAt: createdToday},
			keyword: "",
			want:    false,
		},
		{
			name:    "keyword fused with content mention",
			note:    &Note{Title: "Health", Content: "Dentist appointment tomorrow at 3pm", CreatedAt: createdToday},
			keyword: "dentist",
			want:    true,
		},
		{
			name:    "created tomorrow but keyword absent",
			note:    &Note{Title: "Groceries", Content: "Buy milk and eggs", CreatedAt: createdTomorrow},
			keyword: "dentist",
			want:    false,
		},
		{
			name:    "created tomorrow and keyword present",
			note:    &Note{Title: "Dentist", Content: "Bring insurance card", CreatedAt: createdTomorrow},
			keyword: "dentist",
			want:    true,
		},
		{
			name:    "keyword present but no tomorrow evidence",
			note:    &Note{Title: "Dentist history", Content: "Last visit went fine", CreatedAt: createdToday},
			keyword: "dentist",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesSmartTomorrow(tt.note, tt.keyword, tomorrow); got != tt.want {
				t.Errorf("matchesSmartTomorrow(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

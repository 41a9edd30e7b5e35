package notes

import (
	"strings"
	"time"
)

// matchMode is the resolved strategy for a date filter.
type matchMode int

const (
	// modeNone means the filter was not recognized; nothing matches.
	modeNone matchMode = iota

	// modeExact compares the note's creation date to a single target date.
	modeExact

	// modeRange checks the creation date against an inclusive date window.
	modeRange

	// modeSmartTomorrow combines creation-date and content evidence for
	// the "tomorrow" filter, since relative date words usually live in
	// the note text rather than in the creation timestamp.
	modeSmartTomorrow
)

// dateMatch is a resolved date filter ready to test notes against.
type dateMatch struct {
	mode   matchMode
	target time.Time // exact date, or tomorrow's date in smart mode
	start  time.Time // inclusive range start
	end    time.Time // inclusive range end
}

// resolveDateFilter maps a filter string to a match strategy relative to
// now. Recognized filters (case-insensitive): today, yesterday,
// tomorrow, this week, last week, next week, and literal YYYY-MM-DD
// dates. Weeks run Monday through Sunday. Anything else resolves to
// modeNone, which matches no notes.
func resolveDateFilter(filter string, now time.Time) dateMatch {
	today := dateOnly(now)

	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "today":
		return dateMatch{mode: modeExact, target: today}
	case "yesterday":
		return dateMatch{mode: modeExact, target: today.AddDate(0, 0, -1)}
	case "tomorrow":
		return dateMatch{mode: modeSmartTomorrow, target: today.AddDate(0, 0, 1)}
	case "this week":
		monday := mondayOf(today)
		return dateMatch{mode: modeRange, start: monday, end: monday.AddDate(0, 0, 6)}
	case "last week":
		monday := mondayOf(today)
		return dateMatch{mode: modeRange, start: monday.AddDate(0, 0, -7), end: monday.AddDate(0, 0, -1)}
	case "next week":
		sunday := mondayOf(today).AddDate(0, 0, 6)
		return dateMatch{mode: modeRange, start: sunday.AddDate(0, 0, 1), end: sunday.AddDate(0, 0, 7)}
	}

	if target, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(filter), now.Location()); err == nil {
		return dateMatch{mode: modeExact, target: target}
	}

	return dateMatch{mode: modeNone}
}

// matchesDate tests a note's creation date against an exact or range
// match. Smart-tomorrow is handled separately because it also inspects
// note text.
func (m dateMatch) matchesDate(n *Note) bool {
	created := dateOnly(n.CreatedAt)
	switch m.mode {
	case modeExact:
		return created.Equal(m.target)
	case modeRange:
		return !created.Before(m.start) && !created.After(m.end)
	default:
		return false
	}
}

// matchesSmartTomorrow implements the fused tomorrow heuristic. With a
// keyword, the keyword is part of the date logic itself rather than a
// second filter: a note qualifies if it mentions "tomorrow" and the
// keyword, or was created tomorrow and mentions the keyword. Without a
// keyword, either creation date or a "tomorrow" mention is enough.
func matchesSmartTomorrow(n *Note, keyword string, tomorrow time.Time) bool {
	createdTomorrow := dateOnly(n.CreatedAt).Equal(tomorrow)
	mentionsTomorrow := n.mentions("tomorrow")

	if keyword == "" {
		return createdTomorrow || mentionsTomorrow
	}

	hasKeyword := n.mentions(keyword)
	return (mentionsTomorrow && hasKeyword) || (createdTomorrow && hasKeyword)
}

// dateOnly truncates a timestamp to midnight of its calendar date,
// preserving the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// mondayOf returns the Monday of the week containing the given date.
// Weekday indexing is Monday-based, so Sunday belongs to the preceding
// Monday's week.
func mondayOf(date time.Time) time.Time {
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -daysSinceMonday)
}

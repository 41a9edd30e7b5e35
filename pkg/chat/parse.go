package chat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberPattern     = regexp.MustCompile(`\d+`)
	expressionPattern = regexp.MustCompile(`[0-9+\-*/().\s]+`)
)

// dateFilters lists the recognized date phrases, longest first so
// "last week" wins over the bare "week" shorthand.
var dateFilters = []string{"last week", "next week", "this week", "yesterday", "tomorrow", "today"}

// stopWords are dropped when distilling a date query down to its
// keyword.
var stopWords = map[string]bool{
	"show": true, "notes": true, "note": true, "find": true,
	"search": true, "get": true, "list": true, "all": true,
	"for": true, "about": true, "from": true, "in": true, "on": true,
	"my": true, "me": true, "the": true,
}

// hasAny reports whether s contains any of the substrings.
func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractNumber returns the first run of digits in the text.
func extractNumber(s string) (int, bool) {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// detectDateFilter finds the first recognized date phrase in the
// lowered input. A bare "week" counts as "this week".
func detectDateFilter(lower string) (string, bool) {
	for _, filter := range dateFilters {
		if strings.Contains(lower, filter) {
			return filter, true
		}
	}
	if strings.Contains(lower, "week") {
		return "this week", true
	}
	return "", false
}

// extractDateKeyword strips date phrases and command words from the
// lowered input and returns what remains as a search keyword.
func extractDateKeyword(lower string) string {
	clean := lower
	for _, phrase := range []string{
		"last week", "next week", "this week",
		"yesterday's", "yesterday", "tomorrow's", "tomorrow",
		"today's", "today", "week",
	} {
		clean = strings.ReplaceAll(clean, phrase, " ")
	}

	var kept []string
	for _, word := range strings.Fields(clean) {
		word = strings.Trim(word, ".,!?'\"")
		if len(word) <= 1 || stopWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// extractExpression pulls the longest arithmetic-looking run out of
// the text.
func extractExpression(s string) (string, bool) {
	expr := strings.TrimSpace(expressionPattern.FindString(s))
	if expr == "" {
		return "", false
	}
	return expr, true
}

// stripPhrases removes every occurrence of the given lowercase phrases
// from s, case-insensitively, preserving the case of what remains.
func stripPhrases(s string, phrases ...string) string {
	for _, phrase := range phrases {
		for {
			idx := strings.Index(strings.ToLower(s), phrase)
			if idx == -1 {
				break
			}
			s = s[:idx] + s[idx+len(phrase):]
		}
	}
	return strings.TrimSpace(s)
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

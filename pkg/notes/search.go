package notes

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// SearchByDate returns notes whose creation date satisfies the given
// filter, in insertion order. An unrecognized filter yields an empty
// result rather than an error; search degrades to "no matches". For all
// filters except "tomorrow" a non-empty keyword is applied as an
// independent secondary filter on title and content. The "tomorrow"
// filter fuses the keyword into the date heuristic itself (see
// matchesSmartTomorrow).
func (s *Store) SearchByDate(dateFilter, keyword string) []*Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cloneAll(searchByDate(s.notes, dateFilter, keyword, s.now()))
}

// searchByDate is the pure filtering core behind SearchByDate.
func searchByDate(list []*Note, dateFilter, keyword string, now time.Time) []*Note {
	m := resolveDateFilter(dateFilter, now)
	if m.mode == modeNone {
		return nil
	}

	var out []*Note
	for _, n := range list {
		if m.mode == modeSmartTomorrow {
			if matchesSmartTomorrow(n, keyword, m.target) {
				out = append(out, n)
			}
			continue
		}

		if !m.matchesDate(n) {
			continue
		}
		if keyword != "" && !n.mentions(keyword) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SearchByKeyword returns notes containing the keyword in the selected
// fields, in insertion order. searchIn is one of "title", "content" or
// "both"; anything else falls back to both. An empty keyword is a
// validation error.
func (s *Store) SearchByKeyword(keyword, searchIn string) ([]*Note, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: search keyword cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Note
	for _, n := range s.notes {
		if n.matchesKeyword(keyword, searchIn) {
			out = append(out, n)
		}
	}
	return s.cloneAll(out), nil
}

// SearchByContentDate returns notes that mention the given date
// reference anywhere in their title or content. This is a plain
// substring search: no date parsing and no creation-timestamp logic.
// It answers "which notes talk about friday" rather than "which notes
// were created on friday".
func (s *Store) SearchByContentDate(reference string) []*Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Note
	for _, n := range s.notes {
		if n.mentions(reference) {
			out = append(out, n)
		}
	}
	return s.cloneAll(out)
}

// containsFold reports whether substr occurs in s, comparing
// case-insensitively on NFC-normalized text so composed and decomposed
// forms of the same characters match. All substring heuristics in this
// package (keyword filters, the "tomorrow" mention check, content date
// references) route through here, keeping the matching strategy in one
// place.
func containsFold(s, substr string) bool {
	return strings.Contains(foldNorm(s), foldNorm(substr))
}

func foldNorm(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

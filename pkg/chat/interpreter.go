// Package chat turns free-form text into tool calls. It carries the
// rule-based command routing of the original chatbot UIs so the TUI and
// CLI can answer natural phrasings like "show notes today" or
// "add note: Standup: Moved to 9am" without an LLM in the loop.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/types"
)

// Caller invokes tools by name. Satisfied by *client.Client.
type Caller interface {
	CallTool(ctx context.Context, name string, args map[string]interface{}) (*types.CallToolResponse, error)
}

// Interpreter routes free text to tool calls.
type Interpreter struct {
	caller Caller
	log    *logging.Logger
}

// NewInterpreter creates an interpreter over the given caller. A nil
// logger disables logging.
func NewInterpreter(caller Caller, log *logging.Logger) *Interpreter {
	if log == nil {
		log = logging.NewNop()
	}
	return &Interpreter{caller: caller, log: log}
}

// Handle interprets one line of input and returns the reply text.
// Tool-level failures come back as reply text; the error return is
// reserved for transport problems.
func (in *Interpreter) Handle(ctx context.Context, input string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(input))

	switch {
	case hasAny(lower, "add note", "create note", "new note"):
		return in.handleAddNote(ctx, input)

	case containsDateQuery(lower):
		return in.handleDateSearch(ctx, lower)

	case hasAny(lower, "list notes", "show notes", "all notes"):
		return in.call(ctx, "list_notes", nil)

	case hasAny(lower, "get note", "show note"):
		id, ok := extractNumber(input)
		if !ok {
			return "Please specify a note ID (e.g., 'get note 1')", nil
		}
		return in.call(ctx, "get_note", map[string]interface{}{"id": id})

	case hasAny(lower, "delete note", "remove note"):
		id, ok := extractNumber(input)
		if !ok {
			return "Please specify a note ID (e.g., 'delete note 1')", nil
		}
		return in.call(ctx, "delete_note", map[string]interface{}{"id": id})

	case hasAny(lower, "search notes", "find notes", "search for"):
		return in.handleSearch(ctx, lower)

	case strings.Contains(lower, "calculate") || strings.ContainsAny(input, "+-*/="):
		return in.handleCalculation(ctx, input)

	case hasAny(lower, "time", "date", "current time", "what time"):
		return in.call(ctx, "get_current_time", nil)

	case hasAny(lower, "storage", "where are my notes"):
		return in.call(ctx, "get_storage_info", nil)

	default:
		return HelpText(), nil
	}
}

// call invokes a tool and unwraps its text. IsError results travel as
// reply text so the conversation keeps going.
func (in *Interpreter) call(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	if args == nil {
		args = map[string]interface{}{}
	}

	in.log.Debugf("routing to tool %s with args %v", name, args)

	resp, err := in.caller.CallTool(ctx, name, args)
	if err != nil {
		return "", fmt.Errorf("chat: error calling tool %s: %w", name, err)
	}
	return resp.Text(), nil
}

// handleAddNote parses "add note ..." phrasings into a title and
// content. Strategies, in order: "Title: Content" colon split, an
// "about <topic>" form, and finally the whole remainder as a quick
// note.
func (in *Interpreter) handleAddNote(ctx context.Context, input string) (string, error) {
	clean := stripPhrases(input, "add note", "create note", "new note")
	clean = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(clean), ":"))

	var title, content string
	cleanLower := strings.ToLower(clean)

	switch {
	case strings.Contains(clean, ":"):
		parts := strings.SplitN(clean, ":", 2)
		title = strings.TrimSpace(parts[0])
		content = strings.TrimSpace(parts[1])

	case strings.Contains(cleanLower, " about "):
		topic := strings.SplitN(cleanLower, " about ", 2)[1]
		title = capitalize(topic)
		content = "Note about " + topic

	case strings.HasPrefix(cleanLower, "about "):
		topic := strings.TrimPrefix(cleanLower, "about ")
		title = capitalize(topic)
		content = "Note about " + topic

	default:
		title = "Quick Note"
		if clean != "" {
			content = clean
		} else {
			content = "Empty note"
		}
	}

	if strings.TrimSpace(title) == "" {
		title = "Untitled Note"
	}
	if strings.TrimSpace(content) == "" {
		content = "No content provided"
	}

	in.log.Debugf("parsed note title=%q content=%q", title, content)

	return in.call(ctx, "add_note", map[string]interface{}{
		"title":   title,
		"content": content,
	})
}

// handleDateSearch runs the smart date search: the date phrase becomes
// the filter and whatever meaningful words remain become the keyword.
func (in *Interpreter) handleDateSearch(ctx context.Context, lower string) (string, error) {
	filter, ok := detectDateFilter(lower)
	if !ok {
		return "Could not detect a date reference in your message", nil
	}

	args := map[string]interface{}{"date_filter": filter}
	if keyword := extractDateKeyword(lower); keyword != "" {
		args["keyword"] = keyword
	}

	return in.call(ctx, "search_notes_by_date", args)
}

// handleSearch extracts the keyword after the search phrasing and runs
// the keyword search over titles and content.
func (in *Interpreter) handleSearch(ctx context.Context, lower string) (string, error) {
	keyword := ""
	for _, phrase := range []string{"search notes for", "find notes about", "search for", "search notes", "find notes"} {
		if idx := strings.Index(lower, phrase); idx != -1 {
			keyword = strings.TrimSpace(lower[idx+len(phrase):])
			break
		}
	}

	if keyword == "" {
		return "Please specify what to search for. Example: 'search notes for meeting'", nil
	}

	return in.call(ctx, "search_notes", map[string]interface{}{
		"keyword":   keyword,
		"search_in": "both",
	})
}

// handleCalculation pulls an arithmetic expression out of the input,
// preferring whatever follows the word "calculate".
func (in *Interpreter) handleCalculation(ctx context.Context, input string) (string, error) {
	part := input
	lower := strings.ToLower(input)
	if idx := strings.Index(lower, "calculate"); idx != -1 {
		part = input[idx+len("calculate"):]
	}

	expr, ok := extractExpression(part)
	if !ok {
		return "Couldn't find a mathematical expression. Try: 'calculate 2 + 3' or just '15 + 25 * 2'", nil
	}

	return in.call(ctx, "calculate", map[string]interface{}{"expression": expr})
}

// containsDateQuery reports whether the input asks about notes for a
// particular date, which takes priority over the plain list and search
// routes.
func containsDateQuery(lower string) bool {
	if !strings.Contains(lower, "note") {
		return false
	}
	_, ok := detectDateFilter(lower)
	return ok
}

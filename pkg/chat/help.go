package chat

// HelpText lists the phrasings the interpreter understands. Returned
// verbatim when no route matches the input.
func HelpText() string {
	return `Available commands:

Notes:
  "add note: Title: Content"
  "add note about meeting"
  "list notes"
  "get note 1"
  "delete note 1"

Date searches:
  "show notes today"
  "tomorrow meeting notes"
  "show notes this week"

Search:
  "search notes for meeting"
  "find notes about groceries"

Calculator:
  "calculate 15 + 25 * 2"

Time and storage:
  "what time is it?"
  "storage info"`
}

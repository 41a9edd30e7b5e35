package chat

import "strings"

// Command is a parsed slash command.
type Command struct {
	Name string
	Arg  string
}

// CommandInfo describes one slash command for help rendering.
type CommandInfo struct {
	Name        string
	Description string
}

// Commands returns the slash commands the chat UIs understand.
func Commands() []CommandInfo {
	return []CommandInfo{
		{Name: "help", Description: "Show available commands"},
		{Name: "tools", Description: "List the server's tools"},
		{Name: "stats", Description: "Show storage statistics"},
		{Name: "clear", Description: "Clear the conversation"},
		{Name: "copy", Description: "Copy the last reply to the clipboard"},
		{Name: "raw", Description: "Show the last raw tool response"},
		{Name: "quit", Description: "Exit the chat"},
	}
}

// ShouldIntercept reports whether the input is a slash command and
// should bypass the interpreter.
func ShouldIntercept(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// Parse splits a slash command into its name and argument. The
// argument keeps its internal spacing.
func Parse(input string) (*Command, bool) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") {
		return nil, false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(trimmed, "/"), " ")
	return &Command{Name: name, Arg: strings.TrimSpace(arg)}, true
}

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCommand *Command
		wantOK      bool
	}{
		{
			name:        "bare command",
			input:       "/help",
			wantCommand: &Command{Name: "help", Arg: ""},
			wantOK:      true,
		},
		{
			name:        "command with argument",
			input:       "/raw last",
			wantCommand: &Command{Name: "raw", Arg: "last"},
			wantOK:      true,
		},
		{
			name:        "leading whitespace",
			input:       "  /quit",
			wantCommand: &Command{Name: "quit", Arg: ""},
			wantOK:      true,
		},
		{
			name:        "trailing whitespace in argument",
			input:       "/copy reply  ",
			wantCommand: &Command{Name: "copy", Arg: "reply"},
			wantOK:      true,
		},
		{
			name:        "internal spaces preserved",
			input:       "/raw tool  call   output",
			wantCommand: &Command{Name: "raw", Arg: "tool  call   output"},
			wantOK:      true,
		},
		{
			name:        "not a slash command",
			input:       "list notes",
			wantCommand: nil,
			wantOK:      false,
		},
		{
			name:        "empty string",
			input:       "",
			wantCommand: nil,
			wantOK:      false,
		},
		{
			name:        "just slash",
			input:       "/",
			wantCommand: &Command{Name: "", Arg: ""},
			wantOK:      true,
		},
		{
			name:        "slash in middle",
			input:       "not /help",
			wantCommand: nil,
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, cmd)
				assert.Equal(t, tt.wantCommand.Name, cmd.Name)
				assert.Equal(t, tt.wantCommand.Arg, cmd.Arg)
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestShouldIntercept(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "slash command", input: "/stats", want: true},
		{name: "slash command with args", input: "/raw last", want: true},
		{name: "regular message", input: "list notes", want: false},
		{name: "empty string", input: "", want: false},
		{name: "slash in middle", input: "not /stats", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIntercept(tt.input))
		})
	}
}

func TestCommands(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 7)

	names := make(map[string]bool, len(commands))
	for _, cmd := range commands {
		assert.NotEmpty(t, cmd.Description)
		names[cmd.Name] = true
	}

	for _, want := range []string{"help", "tools", "stats", "clear", "copy", "raw", "quit"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/scribe/pkg/chat"
)

// Init starts the textarea cursor blink.
func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// Update is the Bubble Tea event loop handler.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.spinner, spCmd = m.spinner.Update(msg)
	m.textarea, tiCmd = m.textarea.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case replyMsg:
		return m.handleReply(msg)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			if msg.Alt {
				m.textarea.InsertString("\n")
				return m, nil
			}
			return m.handleEnter(tiCmd, vpCmd, spCmd)
		}

	case tea.MouseMsg:
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, spCmd)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.viewport.Width = m.width - 4
	m.viewport.Height = m.viewportHeight()
	m.textarea.SetWidth(m.width - 8)
	m.ready = true

	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
	return m, nil
}

// viewportHeight computes the transcript height from the fixed chrome
// around it.
func (m *model) viewportHeight() int {
	headerHeight := 9 // ASCII art (6) + tips (1) + status bar (1) + blank (1)
	inputHeight := m.textarea.Height() + 2
	bottomBarHeight := 1
	loadingHeight := 0
	if m.busy {
		loadingHeight = 1
	}

	h := m.height - headerHeight - inputHeight - bottomBarHeight - loadingHeight
	if h < 5 {
		h = 5
	}
	return h
}

func (m *model) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.viewport.Height = m.viewportHeight()

	if msg.err != nil {
		m.appendLine(errorStyle.Render("Error: ") + msg.err.Error())
		return m, nil
	}

	m.lastReply = msg.text
	m.appendLine(replyStyle.Render("Scribe: ") + msg.text)
	m.appendLine("")
	return m, nil
}

func (m *model) handleEnter(tiCmd, vpCmd, spCmd tea.Cmd) (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, tea.Batch(tiCmd, vpCmd, spCmd)
	}
	if m.busy {
		return m, tea.Batch(tiCmd, vpCmd, spCmd)
	}

	m.textarea.Reset()

	if chat.ShouldIntercept(input) {
		return m.handleSlashCommand(input)
	}

	m.appendLine(userStyle.Render("You: ") + input)
	m.busy = true
	m.viewport.Height = m.viewportHeight()

	return m, tea.Batch(m.sendCmd(input), m.spinner.Tick)
}

// sendCmd runs the request off the update loop. The assistant handles
// the turn when configured; otherwise the rule-based interpreter does.
func (m *model) sendCmd(input string) tea.Cmd {
	assist := m.assist
	interp := m.interp

	return func() tea.Msg {
		if assist != nil {
			text, err := assist.Send(context.Background(), input)
			return replyMsg{text: text, err: err}
		}
		text, err := interp.Handle(context.Background(), input)
		return replyMsg{text: text, err: err}
	}
}

func (m *model) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	cmd, ok := chat.Parse(input)
	if !ok {
		return m, nil
	}

	m.appendLine(userStyle.Render("You: ") + input)

	switch cmd.Name {
	case "help":
		m.appendLine(replyStyle.Render(chat.HelpText()))
		m.appendLine(systemStyle.Render(m.slashHelp()))
		m.appendLine("")
		return m, nil

	case "tools":
		m.busy = true
		m.viewport.Height = m.viewportHeight()
		return m, tea.Batch(m.listToolsCmd(), m.spinner.Tick)

	case "stats":
		m.busy = true
		m.viewport.Height = m.viewportHeight()
		return m, tea.Batch(m.sendToolCmd("get_storage_info"), m.spinner.Tick)

	case "clear":
		m.content.Reset()
		m.lastReply = ""
		if m.assist != nil {
			m.assist.Reset()
		}
		m.viewport.SetContent("")
		m.appendLine(systemStyle.Render("Conversation cleared."))
		return m, nil

	case "copy":
		if m.lastReply == "" {
			m.appendLine(systemStyle.Render("Nothing to copy yet."))
			return m, nil
		}
		if err := clipboard.WriteAll(m.lastReply); err != nil {
			m.appendLine(errorStyle.Render("Error: ") + fmt.Sprintf("clipboard unavailable: %v", err))
			return m, nil
		}
		m.appendLine(systemStyle.Render("Copied last reply to clipboard."))
		return m, nil

	case "raw":
		m.appendRawResponse()
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.appendLine(errorStyle.Render(fmt.Sprintf("Unknown command: /%s (try /help)", cmd.Name)))
		return m, nil
	}
}

// slashHelp renders the slash command list for /help.
func (m *model) slashHelp() string {
	var b strings.Builder
	b.WriteString("Slash commands:\n")
	for _, info := range chat.Commands() {
		fmt.Fprintf(&b, "  /%-6s %s\n", info.Name, info.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// appendRawResponse renders the last raw tool response as highlighted
// JSON.
func (m *model) appendRawResponse() {
	name, last := m.recorder.lastResponse()
	if last == nil {
		m.appendLine(systemStyle.Render("No tool has run yet."))
		return
	}

	pretty, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		m.appendLine(errorStyle.Render("Error: ") + err.Error())
		return
	}

	m.appendLine(systemStyle.Render(fmt.Sprintf("Last tool response (%s):", name)))

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(pretty), "json", "terminal256", "monokai"); err != nil {
		m.appendLine(string(pretty))
	} else {
		m.appendLine(buf.String())
	}
	m.appendLine("")
}

// listToolsCmd fetches and formats the tool catalog.
func (m *model) listToolsCmd() tea.Cmd {
	rec := m.recorder

	return func() tea.Msg {
		catalog, err := rec.ListTools(context.Background())
		if err != nil {
			return replyMsg{err: err}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d tools available:\n", len(catalog))
		for _, tool := range catalog {
			fmt.Fprintf(&b, "  %-28s %s\n", tool.Name, tool.Description)
		}
		return replyMsg{text: strings.TrimRight(b.String(), "\n")}
	}
}

// sendToolCmd invokes a single no-argument tool.
func (m *model) sendToolCmd(name string) tea.Cmd {
	rec := m.recorder

	return func() tea.Msg {
		resp, err := rec.CallTool(context.Background(), name, nil)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{text: resp.Text()}
	}
}

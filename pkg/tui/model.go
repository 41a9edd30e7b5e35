package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/entrhq/scribe/pkg/assistant"
	"github.com/entrhq/scribe/pkg/chat"
	"github.com/entrhq/scribe/pkg/client"
	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/types"
)

// model holds the state of the chat TUI.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Backend wiring
	recorder *Recorder
	interp   *chat.Interpreter
	assist   *assistant.Assistant
	log      *logging.Logger

	// Transcript
	content   *strings.Builder
	lastReply string

	// UI state
	busy   bool
	width  int
	height int
	ready  bool
}

// replyMsg carries the outcome of one request back into the update
// loop.
type replyMsg struct {
	text string
	err  error
}

// Recorder wraps a client and remembers the last raw tool response so
// /raw can show it. It satisfies the Caller interfaces of both the
// interpreter and the assistant, so every tool call in a session is
// captured no matter which path routed it. Safe for use from request
// goroutines.
type Recorder struct {
	*client.Client

	mu   sync.Mutex
	name string
	last *types.CallToolResponse
}

// NewRecorder wraps the given client.
func NewRecorder(c *client.Client) *Recorder {
	return &Recorder{Client: c}
}

// CallTool invokes the tool through the wrapped client and records the
// response.
func (r *Recorder) CallTool(ctx context.Context, name string, args map[string]interface{}) (*types.CallToolResponse, error) {
	resp, err := r.Client.CallTool(ctx, name, args)
	if err == nil {
		r.mu.Lock()
		r.name, r.last = name, resp
		r.mu.Unlock()
	}
	return resp, err
}

// lastResponse returns the most recent tool name and response, or
// ("", nil) when no tool has run yet.
func (r *Recorder) lastResponse() (string, *types.CallToolResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name, r.last
}

func newModel(rec *Recorder, interp *chat.Interpreter, assist *assistant.Assistant, log *logging.Logger) model {
	ta := textarea.New()
	ta.Placeholder = "Ask about your notes..."
	ta.Prompt = "> "
	ta.CharLimit = 4000
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return model{
		viewport: viewport.New(80, 20),
		textarea: ta,
		spinner:  sp,
		recorder: rec,
		interp:   interp,
		assist:   assist,
		log:      log,
		content:  &strings.Builder{},
	}
}

// appendLine adds one styled line to the transcript and scrolls to the
// bottom.
func (m *model) appendLine(line string) {
	if m.content.Len() > 0 {
		m.content.WriteString("\n")
	}
	m.content.WriteString(line)
	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}

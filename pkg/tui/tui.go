// Package tui provides the interactive chat terminal for scribe: a
// conversation view over a running server, with free text routed
// through the command interpreter or the AI assistant and slash
// commands for session control.
//
// The code is split by concern in the usual Bubble Tea shape:
//   - tui.go: application wiring and program lifecycle
//   - model.go: model state and the tool-call recorder
//   - update.go: event loop and slash command handling
//   - view.go: rendering
//   - styles.go: colors and lipgloss styles
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/scribe/pkg/assistant"
	"github.com/entrhq/scribe/pkg/chat"
	"github.com/entrhq/scribe/pkg/logging"
)

// App wires the chat TUI to a running scribe server.
type App struct {
	recorder *Recorder
	assist   *assistant.Assistant
	log      *logging.Logger
	program  *tea.Program
}

// NewApp creates the chat application over a recorder-wrapped client.
// assist may be nil, which leaves the rule-based interpreter handling
// every message. A nil log disables logging.
func NewApp(rec *Recorder, assist *assistant.Assistant, log *logging.Logger) *App {
	if log == nil {
		log = logging.NewNop()
	}
	return &App{recorder: rec, assist: assist, log: log}
}

// Run checks the server is reachable, then starts the TUI and blocks
// until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	health, err := a.recorder.Health(ctx)
	if err != nil {
		return fmt.Errorf("tui: cannot reach scribe server at %s: %w", a.recorder.URL, err)
	}

	interp := chat.NewInterpreter(a.recorder, a.log)

	m := newModel(a.recorder, interp, a.assist, a.log)
	m.appendLine(systemStyle.Render(fmt.Sprintf(
		"Connected to %s (v%s, %d notes). Type /help for commands.",
		a.recorder.URL, health.Version, health.Storage.TotalNotes)))
	if a.assist == nil {
		m.appendLine(systemStyle.Render(
			"Assistant disabled (no API key); messages go through the built-in command interpreter."))
	}
	m.appendLine("")

	a.log.Infof("chat session started against %s", a.recorder.URL)

	a.program = tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := a.program.Run(); err != nil {
		// A canceled context is a normal shutdown path (SIGINT/SIGTERM
		// in the launcher), not a program failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}

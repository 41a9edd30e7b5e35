package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/scribe/pkg/ui"
)

// View renders the chat interface.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.buildHeader()
	tips := m.buildTips()
	topStatus := m.buildTopStatus()
	loadingIndicator := m.buildLoadingIndicator()
	inputBox := m.buildInputBox()
	bottomBar := m.buildBottomBar()

	if m.busy {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			tips,
			topStatus,
			"",
			m.viewport.View(),
			loadingIndicator,
			inputBox,
			bottomBar,
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tips,
		topStatus,
		"",
		m.viewport.View(),
		inputBox,
		bottomBar,
	)
}

// buildHeader renders the banner.
func (m *model) buildHeader() string {
	return headerStyle.Render(ui.GenerateASCIIArt("SCRIBE"))
}

// buildTips renders the usage hints under the banner.
func (m *model) buildTips() string {
	return tipsStyle.Render(`  Tips: Ask about your notes • Enter to send • Alt+Enter for new line • /help for commands • Ctrl+C to exit`)
}

// buildTopStatus renders the server connection line.
func (m *model) buildTopStatus() string {
	return statusBarStyle.Render(fmt.Sprintf(" Server: %s", m.recorder.URL))
}

// buildLoadingIndicator renders the spinner while a request is in
// flight.
func (m *model) buildLoadingIndicator() string {
	if !m.busy {
		return ""
	}
	return loadingStyle.Render(fmt.Sprintf("%s Working...", m.spinner.View()))
}

// buildInputBox renders the text input area.
func (m *model) buildInputBox() string {
	return inputBoxStyle.Width(m.width - 4).Render(m.textarea.View())
}

// buildBottomBar renders the bottom status bar.
func (m *model) buildBottomBar() string {
	bottomLeft := "scribe-chat"
	bottomCenter := "Enter to send • /quit to exit"
	bottomRight := m.modeLabel()

	totalUsed := len(bottomLeft) + len(bottomCenter) + len(bottomRight)
	leftPadding := (m.width - totalUsed) / 3
	rightPadding := m.width - totalUsed - leftPadding*2
	if leftPadding < 2 {
		leftPadding = 2
	}
	if rightPadding < 2 {
		rightPadding = 2
	}

	return statusBarStyle.Width(m.width).Render(
		bottomLeft +
			strings.Repeat(" ", leftPadding) +
			bottomCenter +
			strings.Repeat(" ", rightPadding) +
			bottomRight,
	)
}

// modeLabel names whoever is answering: the configured model, or the
// built-in interpreter when no assistant is available.
func (m *model) modeLabel() string {
	if m.assist != nil {
		return fmt.Sprintf("◆ Assistant: %s", m.assist.Model())
	}
	return "◆ Command interpreter"
}

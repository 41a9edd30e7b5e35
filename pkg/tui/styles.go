package tui

import "github.com/charmbracelet/lipgloss"

// Color palette. Single source of truth for all TUI colors.
var (
	waveBlue    = lipgloss.Color("#7FB4CA") // primary accent
	paleBlue    = lipgloss.Color("#A3D4E8") // secondary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // success states
	softRed     = lipgloss.Color("#E46876") // errors
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

// Pre-configured styles for the chat layout.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(waveBlue).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	userStyle = lipgloss.NewStyle().
			Foreground(paleBlue).
			Bold(true)

	replyStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	systemStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(softRed)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(waveBlue).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(waveBlue).
			Padding(0, 2)
)

package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Dark Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	feedbackGood = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	feedbackBad = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	explainStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

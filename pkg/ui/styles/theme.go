// Package styles provides a centralized theme for the termsh UI so all
// components render transcript roles consistently.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	ColorPrompt     = lipgloss.Color("42")  // prompt lines (green)
	ColorText       = lipgloss.Color("252") // command output
	ColorTextMuted  = lipgloss.Color("245") // secondary text
	ColorTextBright = lipgloss.Color("15")  // typed input
	ColorError      = lipgloss.Color("196") // stderr and diagnostics
	ColorAccent     = lipgloss.Color("141") // selection highlight
)

// Transcript line styles, keyed by role.
var (
	// PromptStyle for prompt lines
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt).
			Bold(true)

	// InputStyle for echoed user input
	InputStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright)

	// OutputStyle for stdout lines
	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// ErrorStyle for stderr lines and diagnostics
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Suggestion bar styles.
var (
	// SuggestionStyle for unselected suggestions
	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// SelectedSuggestionStyle for the highlighted suggestion
	SelectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Background(ColorAccent).
				Bold(true)
)

// Cursor style for the block cursor overlay.
var CursorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(ColorTextBright)

// StatusBarStyle is the default status bar style
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#3C3C3C")).
	Padding(0, 1)

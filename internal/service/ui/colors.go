package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/quizzer/internal/core"
)

var (
	// TitleStyle ANSI 6 (Cyan) for headings, readable on any background
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) for descriptions
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	FailureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// ErrorLabelStyle and ErrorTextStyle render "Error: msg", red on yellow
	ErrorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	ErrorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Background(lipgloss.Color("3")).Bold(true)
)

// StyleFor maps a console style hint to its lipgloss style.
func StyleFor(s core.Style) lipgloss.Style {
	switch s {
	case core.StyleAccent:
		return AccentStyle
	case core.StyleSuccess:
		return SuccessStyle
	case core.StyleFailure:
		return FailureStyle
	case core.StylePrompt:
		return PromptStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Colorize renders text with the style for hint s.
func Colorize(text string, s core.Style) string {
	if s == core.StylePlain {
		return text
	}
	return StyleFor(s).Render(text)
}

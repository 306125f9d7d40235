package ui

import (
	"acconsole/internal/console"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Align(lipgloss.Center)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)

	lockedTabStyle = tabStyle.Foreground(lipgloss.Color("240")).Strikethrough(true)

	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	separatorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	switchOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	switchOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)

	toastBase = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("230"))
)

func toastStyle(s console.Severity) lipgloss.Style {
	switch s {
	case console.SeveritySuccess:
		return toastBase.Background(lipgloss.Color("28"))
	case console.SeverityError:
		return toastBase.Background(lipgloss.Color("160"))
	case console.SeverityWarning:
		return toastBase.Background(lipgloss.Color("172"))
	default:
		return toastBase.Background(lipgloss.Color("25"))
	}
}

func toastIcon(s console.Severity) string {
	switch s {
	case console.SeveritySuccess:
		return "✔"
	case console.SeverityError:
		return "✖"
	case console.SeverityWarning:
		return "!"
	default:
		return "i"
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// keyHelp renders "k: desc" pairs separated by bullets.
func keyHelp(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += separatorStyle.Render(" • ")
		}
		out += keyStyle.Render(pairs[i]) + descStyle.Render(": "+pairs[i+1])
	}
	return out
}

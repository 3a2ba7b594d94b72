package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recera/codebuilder/internal/editor"
)

var (
	primaryColor = lipgloss.Color("#8b5cf6")
	mutedColor   = lipgloss.Color("#94a3b8")
	successColor = lipgloss.Color("#10b981")
	errorColor   = lipgloss.Color("#ef4444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primaryColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor)

	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CodeBuilder"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.statusLine()))
	b.WriteString("\n")

	switch {
	case m.errorMessage != "":
		b.WriteString(errorStyle.Render(m.errorMessage))
	case m.statusMessage != "":
		b.WriteString(successStyle.Render(m.statusMessage))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	for _, lang := range editor.Languages() {
		if lang == m.state.Language() {
			tabs = append(tabs, activeTabStyle.Render(lang.Label()))
		} else {
			tabs = append(tabs, tabStyle.Render(lang.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statusLine shows the counters and the file name an export would produce
func (m Model) statusLine() string {
	stats := m.state.Stats()
	return fmt.Sprintf("Lines: %d • Chars: %d • %s", stats.Lines, stats.Chars, editor.Filename(m.state.Language()))
}

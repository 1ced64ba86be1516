package ui

import "github.com/charmbracelet/lipgloss"

var (
	statusActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusPausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusBlockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusCancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)

	labelStyle = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// StyleStatus renders a status value with its terminal color.
func StyleStatus(status string) string {
	if !ansiEnabled() {
		return status
	}
	switch status {
	case "active":
		return statusActiveStyle.Render(status)
	case "paused":
		return statusPausedStyle.Render(status)
	case "blocked":
		return statusBlockedStyle.Render(status)
	case "completed":
		return statusCompletedStyle.Render(status)
	case "cancelled":
		return statusCancelledStyle.Render(status)
	default:
		return status
	}
}

// StyleLabel renders a bold field label.
func StyleLabel(label string) string {
	if !ansiEnabled() {
		return label
	}
	return labelStyle.Render(label)
}

// StyleCount renders a numeric count.
func StyleCount(count string) string {
	if !ansiEnabled() {
		return count
	}
	return countStyle.Render(count)
}

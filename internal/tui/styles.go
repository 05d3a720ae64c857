// Package tui implements the interactive sentence review interface using
// bubbletea. It drives a review.Session; persistence happens after the
// program exits.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	sentenceStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder())

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	publicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	privateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

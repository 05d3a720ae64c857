package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/murmurapp/murmur/internal/review"
)

// Run drives the review TUI to completion and returns the reviewed session.
// aborted is true when the user quit without confirming; the caller must
// not commit in that case.
func Run(newSession func() *review.Session) (session *review.Session, aborted bool, err error) {
	program := tea.NewProgram(NewModel(newSession))

	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("review interface failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("unexpected model type %T", final)
	}

	return m.Session(), m.Aborted() || !m.Committed(), nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murmurapp/murmur/internal/model"
	"github.com/murmurapp/murmur/internal/review"
)

// sessionReadyMsg is sent when the initial scan pass finishes.
type sessionReadyMsg struct {
	session *review.Session
}

// Model is the bubbletea model for the review workflow.
type Model struct {
	session    *review.Session
	newSession func() *review.Session
	spinner    spinner.Model
	width      int
	scanning   bool
	committed  bool
	aborted    bool
}

// NewModel creates the review TUI. newSession is called off the UI
// goroutine because the scan pass may take a moment on long documents.
func NewModel(newSession func() *review.Session) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		newSession: newSession,
		spinner:    s,
		scanning:   true,
	}
}

// Session returns the reviewed session; valid after the program exits.
func (m Model) Session() *review.Session { return m.session }

// Committed reports whether the user confirmed the review for commit.
func (m Model) Committed() bool { return m.committed }

// Aborted reports whether the user quit without committing.
func (m Model) Aborted() bool { return m.aborted }

// Init starts the spinner and kicks off the scan pass.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return sessionReadyMsg{session: m.newSession()}
		},
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		m.session = msg.session
		m.scanning = false
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.aborted = true
		return m, tea.Quit
	}
	if m.session == nil {
		return m, nil
	}

	switch msg.String() {
	case "right", "l":
		m.session.ClassifyPublic()
	case "left", "h":
		m.session.ClassifyPrivate()
	case "t":
		m.session.Toggle()
	case "P":
		m.session.MarkAllPublic()
	case "V":
		m.session.MarkAllPrivate()
	case "up", "k":
		m.session.Prev()
	case "down", "j":
		m.session.Next()
	case "enter":
		if m.session.Done() {
			m.committed = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the current review state.
func (m Model) View() string {
	if m.scanning || m.session == nil {
		return fmt.Sprintf("\n %s scanning for sensitive content...\n", m.spinner.View())
	}

	var b strings.Builder
	decided, total := m.session.Progress()
	b.WriteString(titleStyle.Render("Privacy review") +
		fmt.Sprintf("  %d/%d decided\n\n", decided, total))

	if m.session.Done() {
		b.WriteString(m.renderSummary())
		b.WriteString(helpStyle.Render("\nenter commit • q abort\n"))
		return b.String()
	}

	current, _ := m.session.Current()
	b.WriteString(fmt.Sprintf("Sentence %d of %d %s\n",
		current.Index+1, total, renderDecision(current.Decision)))
	b.WriteString(sentenceStyle.Render(highlightMatches(current)) + "\n")

	if len(current.Matches) > 0 {
		b.WriteString("\nDetected:\n")
		for _, match := range current.Matches {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				matchStyle.Render(match.Category), match.Text))
		}
	}

	b.WriteString(helpStyle.Render("\n→/l public • ←/h private • t toggle • P all public • V all private • ↑↓ navigate • q abort\n"))
	return b.String()
}

func (m Model) renderSummary() string {
	var public, private, pending int
	for _, s := range m.session.Sentences() {
		switch s.Decision {
		case model.DecisionPublic:
			public++
		case model.DecisionPrivate:
			private++
		case model.DecisionPending:
			pending++
		}
	}
	return fmt.Sprintf("Review complete: %s public, %s private, %s dropped\n",
		publicStyle.Render(fmt.Sprintf("%d", public)),
		privateStyle.Render(fmt.Sprintf("%d", private)),
		pendingStyle.Render(fmt.Sprintf("%d", pending)))
}

func renderDecision(d model.Decision) string {
	switch d {
	case model.DecisionPublic:
		return publicStyle.Render("[public]")
	case model.DecisionPrivate:
		return privateStyle.Render("[private]")
	default:
		return pendingStyle.Render("[pending]")
	}
}

// highlightMatches re-renders the sentence with detected spans emphasized.
func highlightMatches(s model.Sentence) string {
	if len(s.Matches) == 0 {
		return s.Text
	}

	var b strings.Builder
	last := 0
	for _, match := range s.Matches {
		if match.Start < last || match.End > len(s.Text) {
			continue
		}
		b.WriteString(s.Text[last:match.Start])
		b.WriteString(matchStyle.Render(s.Text[match.Start:match.End]))
		last = match.End
	}
	b.WriteString(s.Text[last:])
	return b.String()
}

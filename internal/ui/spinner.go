package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerModel shows a spinner while a lookup runs.
type SpinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
	err      error
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(Primary)
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.err = errCanceled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SpinnerModel) View() string {
	if m.quitting {
		if m.err != nil {
			return ErrorStyle.Render("✗ "+m.message+" failed: "+m.err.Error()) + "\n"
		}
		return ""
	}
	return m.spinner.View() + " " + MutedStyle.Render(m.message+"...") + "\n"
}

type errMsg struct{ err error }
type doneMsg struct{}

var errCanceled = errors.New("canceled")

// RunWithSpinner runs fn behind a spinner, keeping it visible for at least
// minDelay. Non-interactive terminals just run fn.
func RunWithSpinner(message string, minDelay time.Duration, fn func() error) error {
	if !IsInteractiveTerminal() {
		return fn()
	}

	p := tea.NewProgram(NewSpinner(message))

	errChan := make(chan error, 1)
	go func() {
		start := time.Now()
		err := fn()
		if wait := minDelay - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
		errChan <- err
		if err != nil {
			p.Send(errMsg{err})
		} else {
			p.Send(doneMsg{})
		}
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	if m, ok := final.(SpinnerModel); ok && m.err == errCanceled {
		return errCanceled
	}

	return <-errChan
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jzembower/balance/internal/domain"
)

// ErrAnalysisCanceled is returned when the user aborts the in-flight
// model call from the spinner view.
var ErrAnalysisCanceled = errors.New("analysis canceled")

type analysisDoneMsg struct {
	record *domain.FocusAnalysis
	err    error
}

// spinnerModel shows progress while the model call is in flight. The
// call itself runs in a goroutine and reports back through a single
// analysisDoneMsg, so exactly one outcome is observed per request.
type spinnerModel struct {
	spinner  spinner.Model
	message  string
	result   analysisDoneMsg
	done     bool
	canceled bool
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("12"))),
	)
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.canceled = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// runWithSpinner executes fn while displaying a spinner. On a
// non-interactive terminal it just calls fn. Cancellation from the
// spinner cancels the request context, so no partial state is written.
func runWithSpinner(ctx context.Context, interactive bool, message string, fn func(context.Context) (*domain.FocusAnalysis, error)) (*domain.FocusAnalysis, error) {
	if !interactive {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(message))
	go func() {
		record, err := fn(ctx)
		p.Send(analysisDoneMsg{record: record, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running spinner: %w", err)
	}

	m, ok := final.(spinnerModel)
	if !ok || m.canceled {
		return nil, ErrAnalysisCanceled
	}
	return m.result.record, m.result.err
}

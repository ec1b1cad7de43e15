package model

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/cli/styles"
)

// TaskModel shows a spinner while one blocking call runs, then quits.
type TaskModel[T any] struct {
	spinner  spinner.Model
	label    string
	run      func(context.Context) T
	ctx      context.Context
	cancel   context.CancelFunc
	result   T
	done     bool
	canceled bool
	theme    *styles.Theme
}

// taskDoneMsg carries the call's result back to Update.
type taskDoneMsg[T any] struct {
	result T
}

// NewTaskModel creates a spinner for run. Ctrl+C cancels the context
// passed to run.
func NewTaskModel[T any](ctx context.Context, theme *styles.Theme, label string, run func(context.Context) T) *TaskModel[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &TaskModel[T]{
		spinner: styles.NewDefaultSpinner(theme),
		label:   label,
		run:     run,
		ctx:     ctx,
		cancel:  cancel,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m *TaskModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return taskDoneMsg[T]{result: m.run(m.ctx)}
	})
}

// Update implements tea.Model.
func (m *TaskModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg[T]:
		m.result = msg.result
		m.done = true
		m.cancel()
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			m.cancel()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *TaskModel[T]) View() string {
	if m.done {
		return ""
	}
	label := m.label
	if m.canceled {
		label += " (canceling)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, "  ", m.spinner.View(), " ", m.theme.Subtle.Render(label), "\n")
}

// Result returns the call's result once the program has exited.
func (m *TaskModel[T]) Result() T {
	return m.result
}

// Done reports whether the call finished.
func (m *TaskModel[T]) Done() bool {
	return m.done
}

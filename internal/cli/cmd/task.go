package cmd

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/model"
)

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// runTask runs fn behind a spinner on stderr. Without a terminal it just
// calls fn.
func runTask[T any](cmd *cobra.Command, app *cli.App, label string, fn func(context.Context) T) T {
	if !isTerminal(cmd.ErrOrStderr()) {
		return fn(app.Ctx())
	}

	m := model.NewTaskModel(app.Ctx(), app.Theme, label, fn)
	opts := []tea.ProgramOption{tea.WithOutput(cmd.ErrOrStderr())}
	if !isTerminal(cmd.InOrStdin()) {
		opts = append(opts, tea.WithInput(nil))
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !m.Done() {
		return fn(app.Ctx())
	}
	return m.Result()
}

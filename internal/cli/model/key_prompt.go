package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/includs/internal/cli/styles"
)

// KeyPromptModel reads one API key with the input masked.
type KeyPromptModel struct {
	input    textinput.Model
	title    string
	theme    *styles.Theme
	done     bool
	canceled bool
}

// NewKeyPromptModel creates a masked prompt titled title.
func NewKeyPromptModel(theme *styles.Theme, title string) *KeyPromptModel {
	ti := textinput.New()
	ti.Placeholder = "paste the key, empty to remove"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Prompt = styles.IconKey + " "
	ti.PromptStyle = theme.Highlight
	ti.PlaceholderStyle = theme.Subtle
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return &KeyPromptModel{input: ti, title: title, theme: theme}
}

// Init implements tea.Model.
func (m *KeyPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *KeyPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *KeyPromptModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n  " + m.theme.Title.Render(m.title) + "\n\n")
	sb.WriteString("  " + m.input.View() + "\n\n")
	sb.WriteString("  " + m.theme.Subtle.Render("enter save • esc cancel") + "\n")
	return sb.String()
}

// Value returns the entered key with surrounding whitespace removed.
func (m *KeyPromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Canceled reports whether the user left without saving.
func (m *KeyPromptModel) Canceled() bool {
	return m.canceled
}

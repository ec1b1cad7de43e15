package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// ToolbarKeyMap defines keybindings for the reading toolbar.
type ToolbarKeyMap struct {
	FontUp     key.Binding
	FontDown   key.Binding
	LineUp     key.Binding
	LineDown   key.Binding
	Reset      key.Binding
	SaveGlobal key.Binding
	Toggle     key.Binding
	Explain    key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ToolbarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FontUp, k.FontDown, k.LineUp, k.LineDown, k.Explain, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ToolbarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FontUp, k.FontDown, k.LineUp, k.LineDown},
		{k.Reset, k.SaveGlobal, k.Toggle},
		{k.Explain, k.Submit, k.Cancel, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultToolbarKeyMap returns the default toolbar keybindings.
func DefaultToolbarKeyMap() ToolbarKeyMap {
	return ToolbarKeyMap{
		FontUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "larger text"),
		),
		FontDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller text"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more spacing"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "less spacing"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset site"),
		),
		SaveGlobal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "save as global"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle on page"),
		),
		Explain: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explain text"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy explanation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

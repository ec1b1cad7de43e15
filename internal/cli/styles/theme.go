// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/infrastructure/config"
)

// Status colors are fixed; the palette only drives the reading surface.
const (
	errorColor   = lipgloss.Color("#ef4444")
	warningColor = lipgloss.Color("#f59e0b")
)

// Theme is the palette from the config plus the styles the CLI renderers
// and the toolbar draw with.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Toolbar buttons and confirm choices. ButtonMuted is used while the
	// toolbar is off and for the unselected choice.
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	ButtonMuted  lipgloss.Style

	// Source and on/off badges.
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	// Explain panel and confirmation dialog.
	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from the configured palette. A nil config or a
// palette without a background uses the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          errorColor,
		Warning:        warningColor,
		Success:        lipgloss.Color(p.Accent),
	}
	t.textStyles()
	t.toolbarStyles()
	return t
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func chip(fore, back lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fore).Background(back).Padding(0, 1)
}

func (t *Theme) textStyles() {
	t.Title = fg(t.Text).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
}

func (t *Theme) toolbarStyles() {
	t.Button = chip(t.Text, t.SurfaceVariant)
	t.ButtonActive = chip(t.Background, t.Accent).Bold(true)
	t.ButtonMuted = chip(t.Muted, t.Surface)

	t.Badge = chip(t.Background, t.Accent)
	t.BadgeMuted = chip(t.Text, t.SurfaceVariant)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.BoxHeader = fg(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

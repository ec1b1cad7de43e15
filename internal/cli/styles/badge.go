package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// KeyStatusBadge colors a stored key's state.
func (t *Theme) KeyStatusBadge(status entity.KeyStatus) string {
	switch status {
	case entity.KeyValid:
		return t.StatusBadge(string(status), t.Background, t.Success)
	case entity.KeyInvalid:
		return t.StatusBadge(string(status), t.Background, t.Warning)
	default:
		return t.MutedBadge(string(status))
	}
}

// SourceBadge shows which layer the effective typography came from.
func (t *Theme) SourceBadge(src entity.SettingsSource) string {
	switch src {
	case entity.SourceSite:
		return t.AccentBadge("site")
	case entity.SourceFallback:
		return t.StatusBadge("defaults", t.Background, t.Warning)
	default:
		return t.MutedBadge("global")
	}
}

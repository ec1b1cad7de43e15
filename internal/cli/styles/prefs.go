package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/domain/entity"
)

// PrefsRenderer renders the synced preferences record.
type PrefsRenderer struct {
	theme *Theme
}

// NewPrefsRenderer creates a new preferences renderer with the given theme.
func NewPrefsRenderer(theme *Theme) *PrefsRenderer {
	return &PrefsRenderer{theme: theme}
}

// RenderPreferences renders every preference on its own line.
func (r *PrefsRenderer) RenderPreferences(p entity.Preferences) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(18)

	prompt := "default"
	if p.OpenAIPrompt != "" {
		prompt = fmt.Sprintf("custom (%d chars)", len([]rune(p.OpenAIPrompt)))
	}

	rows := [][2]string{
		{"enabledByDefault", fmt.Sprintf("%t", p.EnabledByDefault)},
		{"fontScale", p.Typography().FontScalePercent()},
		{"lineHeight", p.Typography().LineHeightLabel()},
		{"ttsSpeed", string(p.TTSSpeed)},
		{"toolbarPosition", string(p.ToolbarPosition)},
		{"explainMode", p.ExplainMode},
		{"helpTipsEnabled", fmt.Sprintf("%t", p.HelpTipsEnabled)},
		{"openaiPrompt", prompt},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconSliders),
		r.theme.Title.Render("Preferences"),
		r.theme.MutedBadge(fmt.Sprintf("v%d", p.Version)),
	))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    %s %s\n", keyStyle.Render(row[0]), row[1]))
	}
	return sb.String()
}

// RenderUpdated confirms a single preference change.
func (r *PrefsRenderer) RenderUpdated(key, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s set to %s\n",
		iconStyle.Render(IconCheck),
		key,
		r.theme.Highlight.Render(value),
	)
}

// RenderReset confirms a reset to defaults.
func (r *PrefsRenderer) RenderReset() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Settings reset to defaults %s\n",
		iconStyle.Render(IconReset),
		r.theme.Subtle.Render("(API keys kept)"),
	)
}

// RenderCanceled is printed when a confirmation is declined.
func (r *PrefsRenderer) RenderCanceled() string {
	return "\n  " + r.theme.Subtle.Render("Canceled") + "\n"
}

// RenderError renders a failed command.
func (r *PrefsRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}

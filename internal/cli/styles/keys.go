package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/domain/entity"
)

// KeysRenderer renders provider credentials, key tests and voices.
type KeysRenderer struct {
	theme *Theme
}

// NewKeysRenderer creates a new keys renderer with the given theme.
func NewKeysRenderer(theme *Theme) *KeysRenderer {
	return &KeysRenderer{theme: theme}
}

// RenderStatus renders one block per provider. Keys are always masked.
func (r *KeysRenderer) RenderStatus(creds []entity.ProviderCredential) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Subtle

	var sb strings.Builder
	for _, c := range creds {
		sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			iconStyle.Render(IconKey),
			r.theme.Title.Render(c.Provider.DisplayName()),
			r.theme.KeyStatusBadge(c.Status()),
		))
		if c.HasKey() {
			sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("Key     "), entity.MaskAPIKey(c.APIKey)))
		}
		switch c.Provider {
		case entity.ProviderOpenAI:
			sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("Endpoint"), c.Endpoint))
			sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("Model   "), c.Model))
		case entity.ProviderElevenLabs:
			voice := c.VoiceID
			if voice == "" {
				voice = "none selected"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n",
				labelStyle.Render("Voice   "),
				voice,
				labelStyle.Render(fmt.Sprintf("(%s cached)", formatCount(len(c.Voices), "voice"))),
			))
		}
	}
	return sb.String()
}

// RenderSaved confirms a stored or removed key.
func (r *KeysRenderer) RenderSaved(p entity.Provider, key string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	if key == "" {
		return fmt.Sprintf("\n  %s %s key removed\n", iconStyle.Render(IconCheck), p.DisplayName())
	}
	return fmt.Sprintf("\n  %s %s key saved %s\n  %s\n",
		iconStyle.Render(IconCheck),
		p.DisplayName(),
		r.theme.Subtle.Render(entity.MaskAPIKey(key)),
		r.theme.Subtle.Render(fmt.Sprintf("Run 'includs keys test %s' to verify it.", p)),
	)
}

// RenderTestResult renders the outcome of a key test.
func (r *KeysRenderer) RenderTestResult(res entity.KeyTestResult) string {
	if res.Valid {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
		return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconCheck), res.Message())
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	out := fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), res.Message())
	if res.Err != nil {
		out += "  " + r.theme.Subtle.Render(kindLabel(res.Err)) + "\n"
	}
	return out
}

// RenderVoices renders the cached voice list, marking selectedID.
func (r *KeysRenderer) RenderVoices(voices []entity.Voice, selectedID string) string {
	if len(voices) == 0 {
		return "\n  " + r.theme.Subtle.Render("No voices cached. Run 'includs voices list --refresh'.") + "\n"
	}
	rows := make([]table.Row, 0, len(voices))
	for _, v := range voices {
		rows = append(rows, VoiceRow(v, selectedID))
	}
	t := NewStyledTable(r.theme, VoicesTableColumns(), rows, 100, tableHeight(len(rows)))
	return fmt.Sprintf("\n%s\n\n  %s\n", t.View(), r.theme.Subtle.Render(formatCount(len(voices), "voice")))
}

// RenderVoiceSelected confirms the stored voice.
func (r *KeysRenderer) RenderVoiceSelected(v entity.Voice) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	out := fmt.Sprintf("\n  %s Voice %s selected\n", iconStyle.Render(IconVoice), r.theme.Highlight.Render(v.Name))
	if v.PreviewURL != "" {
		out += "  " + r.theme.Subtle.Render("Preview: "+v.PreviewURL) + "\n"
	}
	return out
}

// RenderError renders a failed command.
func (r *KeysRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}

// kindLabel is the short classification printed under a gateway failure.
func kindLabel(err *entity.GatewayError) string {
	if err.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d)", err.Kind, err.StatusCode)
	}
	return string(err.Kind)
}

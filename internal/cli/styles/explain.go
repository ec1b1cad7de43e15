package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/domain/entity"
)

// Glamour style names accepted by NewExplainRenderer.
const (
	MarkdownStyleDark  = "dark"
	MarkdownStylePlain = "notty"
)

const defaultWrapWidth = 80

// ExplainRenderer renders explanations as terminal markdown.
type ExplainRenderer struct {
	theme    *Theme
	markdown *glamour.TermRenderer
}

// NewExplainRenderer creates a renderer wrapping at width columns.
// If the markdown renderer cannot be built, explanations are printed raw.
func NewExplainRenderer(theme *Theme, width int, style string) *ExplainRenderer {
	if width <= 0 {
		width = defaultWrapWidth
	}
	if style == "" {
		style = MarkdownStyleDark
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		md = nil
	}
	return &ExplainRenderer{theme: theme, markdown: md}
}

// RenderExplanation renders a successful explanation.
func (r *ExplainRenderer) RenderExplanation(res entity.ExplainResult) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconRobot),
		r.theme.Title.Render("Explanation"),
		r.theme.MutedBadge(string(res.Source)),
	)
	return header + r.Markdown(res.Explanation)
}

// Markdown renders text, falling back to the raw text.
func (r *ExplainRenderer) Markdown(text string) string {
	if r.markdown == nil {
		return text + "\n"
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return text + "\n"
	}
	return out
}

// RenderFailure renders a failed explain call with a hint for the kinds
// the user can act on.
func (r *ExplainRenderer) RenderFailure(err *entity.GatewayError) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), err.Error()))
	if hint := failureHint(err.Kind); hint != "" {
		sb.WriteString("  " + r.theme.Subtle.Render(hint) + "\n")
	}
	return sb.String()
}

// RenderCopied confirms the clipboard copy.
func (r *ExplainRenderer) RenderCopied() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s Copied to clipboard\n", iconStyle.Render(IconClipboard))
}

func failureHint(kind entity.ErrorKind) string {
	switch kind {
	case entity.KindAuth:
		return "Replace the key with 'includs keys set openai'."
	case entity.KindRateLimit:
		return "Wait a moment before trying again."
	case entity.KindNetwork:
		return "Check your connection or the configured endpoint."
	}
	return ""
}

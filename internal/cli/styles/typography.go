package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/domain/entity"
)

// TypographyRenderer renders resolved typography and adjustments.
type TypographyRenderer struct {
	theme *Theme
}

// NewTypographyRenderer creates a new typography renderer with the given theme.
func NewTypographyRenderer(theme *Theme) *TypographyRenderer {
	return &TypographyRenderer{theme: theme}
}

// RenderSettings renders the effective settings for one origin.
func (r *TypographyRenderer) RenderSettings(eff entity.EffectiveSettings) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	valueStyle := r.theme.Highlight

	origin := eff.Origin
	if origin == "" {
		origin = "global"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconGlobe),
		r.theme.Title.Render(origin),
		r.theme.SourceBadge(eff.Source),
	))
	sb.WriteString(fmt.Sprintf("    %s Font size    %s%s\n",
		iconStyle.Render(IconFont),
		valueStyle.Render(eff.Settings.FontScalePercent()),
		r.globalHint(eff, entity.FieldFontScale),
	))
	sb.WriteString(fmt.Sprintf("    %s Line height  %s%s\n",
		iconStyle.Render(IconLineHeight),
		valueStyle.Render(eff.Settings.LineHeightLabel()),
		r.globalHint(eff, entity.FieldLineHeight),
	))
	return sb.String()
}

// globalHint shows the global value next to a site value that differs.
func (r *TypographyRenderer) globalHint(eff entity.EffectiveSettings, field entity.TypographyField) string {
	if eff.Source != entity.SourceSite || eff.Settings.Get(field) == eff.Global.Get(field) {
		return ""
	}
	label := eff.Global.FontScalePercent()
	if field == entity.FieldLineHeight {
		label = eff.Global.LineHeightLabel()
	}
	return r.theme.Subtle.Render("  (global " + label + ")")
}

// RenderAdjustment renders the outcome of increase or decrease.
func (r *TypographyRenderer) RenderAdjustment(adj entity.Adjustment) string {
	name, label := "Font size", adj.Settings.Settings.FontScalePercent()
	if adj.Field == entity.FieldLineHeight {
		name, label = "Line height", adj.Settings.Settings.LineHeightLabel()
	}

	if !adj.Changed {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		return fmt.Sprintf("\n  %s %s already at %s\n",
			iconStyle.Render(IconWarning),
			name,
			r.theme.Highlight.Render(label),
		)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s %s %s\n",
		iconStyle.Render(IconCheck),
		name,
		r.theme.Highlight.Render(label),
		r.theme.SourceBadge(adj.Settings.Source),
	)
}

// RenderReset renders the settings left after a site reset.
func (r *TypographyRenderer) RenderReset(eff entity.EffectiveSettings) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Reset %s to global settings (%s, %s)\n",
		iconStyle.Render(IconReset),
		r.theme.Highlight.Render(eff.Origin),
		eff.Settings.FontScalePercent(),
		eff.Settings.LineHeightLabel(),
	)
}

// RenderSavedGlobal confirms a new global layer.
func (r *TypographyRenderer) RenderSavedGlobal(s entity.TypographySettings) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Global typography saved (%s, %s)\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(s.FontScalePercent()),
		r.theme.Highlight.Render(s.LineHeightLabel()),
	)
}

// RenderSites renders every stored per-site override as a table.
func (r *TypographyRenderer) RenderSites(sites []usecase.SiteTypography) string {
	if len(sites) == 0 {
		return "\n  " + r.theme.Subtle.Render("No site overrides stored") + "\n"
	}

	rows := make([]table.Row, 0, len(sites))
	for _, s := range sites {
		rows = append(rows, SiteRow(s))
	}
	t := NewStyledTable(r.theme, SitesTableColumns(), rows, 72, tableHeight(len(rows)))
	return fmt.Sprintf("\n%s\n\n  %s\n", t.View(), r.theme.Subtle.Render(formatCount(len(sites), "site")))
}

// RenderError renders a failed typography command.
func (r *TypographyRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}

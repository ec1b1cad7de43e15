package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SitesTableColumns returns columns for the per-site override table.
func SitesTableColumns() []table.Column {
	return []table.Column{
		{Title: "Origin", Width: 40},
		{Title: "Font", Width: 8},
		{Title: "Line", Width: 6},
		{Title: "Stored", Width: 12},
	}
}

// SiteRow converts a stored override to a table row. Stored lists which
// fields the site record sets itself.
func SiteRow(s usecase.SiteTypography) table.Row {
	stored := ""
	switch {
	case s.FontScale != nil && s.LineHeight != nil:
		stored = "font, line"
	case s.FontScale != nil:
		stored = "font"
	case s.LineHeight != nil:
		stored = "line"
	}
	return table.Row{s.Origin, s.Effective.FontScalePercent(), s.Effective.LineHeightLabel(), stored}
}

// VoicesTableColumns returns columns for the voice list.
func VoicesTableColumns() []table.Column {
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Voice ID", Width: 24},
		{Title: "Name", Width: 24},
		{Title: "Preview", Width: 50},
	}
}

// VoiceRow converts a voice to a table row, marking the selected one.
func VoiceRow(v entity.Voice, selectedID string) table.Row {
	mark := ""
	if v.ID == selectedID {
		mark = "*"
	}
	return table.Row{mark, v.ID, v.Name, v.PreviewURL}
}

// tableHeight fits every row plus the header.
func tableHeight(rows int) int {
	return rows + 2
}

// formatCount renders n with an optional noun.
func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

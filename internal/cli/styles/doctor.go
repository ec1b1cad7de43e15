package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CheckLevel grades one doctor check.
type CheckLevel int

const (
	CheckOK CheckLevel = iota
	CheckWarn
	CheckFail
)

// DoctorCheck is one line of the doctor report.
type DoctorCheck struct {
	Name   string
	Level  CheckLevel
	Detail string
}

// DoctorRenderer renders the doctor report.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render prints every check and a summary line.
func (r *DoctorRenderer) Render(checks []DoctorCheck) string {
	var sb strings.Builder
	sb.WriteString("\n  " + r.theme.Title.Render("includs doctor") + "\n\n")

	failed, warned := 0, 0
	for _, c := range checks {
		var icon string
		switch c.Level {
		case CheckOK:
			icon = lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
		case CheckWarn:
			icon = lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning)
			warned++
		default:
			icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
			failed++
		}
		sb.WriteString(fmt.Sprintf("  %s %s", icon, r.theme.Subtle.Width(20).Render(c.Name)))
		if c.Detail != "" {
			sb.WriteString(" " + c.Detail)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n  ")
	switch {
	case failed > 0:
		sb.WriteString(r.theme.ErrorStyle.Render(fmt.Sprintf("%s failed", formatCount(failed, "check"))))
	case warned > 0:
		sb.WriteString(r.theme.WarningStyle.Render(fmt.Sprintf("Usable, %s", formatCount(warned, "warning"))))
	default:
		sb.WriteString(r.theme.SuccessStyle.Render("Everything looks good"))
	}
	sb.WriteString("\n")
	return sb.String()
}

package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/includs/internal/domain/build"
)

// AboutRenderer renders version and build information.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render prints the build block.
func (r *AboutRenderer) Render(info build.Info) string {
	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Source", build.RepoURL()},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n", r.theme.Title.Render("includs"), r.theme.Subtle.Render("readable pages, plain explanations")))
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.Subtle.Width(10).Render(row[0]), row[1]))
	}
	return sb.String()
}

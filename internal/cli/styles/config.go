package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths lists where includs keeps its files.
func (r *ConfigRenderer) RenderPaths(configFile, dbFile, syncFile, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Subtle.Width(12)

	return fmt.Sprintf(
		"\n  %s %s %s\n    %s %s\n    %s %s\n    %s %s\n",
		iconStyle.Render(IconConfig),
		labelStyle.Render("Config"),
		configFile,
		labelStyle.Render("Local store"),
		dbFile,
		labelStyle.Render("Synced prefs"),
		syncFile,
		labelStyle.Render("Logs"),
		logDir,
	)
}

// RenderCreated renders the message after writing a default config file.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Created %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the message when the config file is already there.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file already exists; nothing written."),
	)
}

// RenderOnboarding is printed once, after the first install wrote defaults.
func (r *ConfigRenderer) RenderOnboarding() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s %s\n    %s\n    %s\n    %s\n",
		iconStyle.Render(IconInfo),
		r.theme.Title.Render("Welcome to includs"),
		hintStyle.Render("Adjust text with 'includs typography increase font --origin <url>'."),
		hintStyle.Render("Add an OpenAI key with 'includs keys set openai' to explain text."),
		hintStyle.Render("Open the interactive toolbar with 'includs toolbar --origin <url>'."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

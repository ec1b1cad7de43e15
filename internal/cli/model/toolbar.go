package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 3 * time.Second

const minMarkdownWidth = 40

// Typography is the resolver the toolbar drives.
type Typography interface {
	Resolve(ctx context.Context, siteOrigin string) entity.EffectiveSettings
	Adjust(ctx context.Context, current entity.EffectiveSettings, field entity.TypographyField, dir entity.Direction) entity.Adjustment
	ResetToDefaults(ctx context.Context, siteOrigin string) entity.EffectiveSettings
	SaveAsGlobal(ctx context.Context, s entity.TypographySettings) error
	InvalidateCache(siteOrigins ...string)
}

// Explainer sends text to the completion provider.
type Explainer interface {
	ExplainText(ctx context.Context, req entity.ExplainRequest) entity.ExplainResult
}

// ToolbarDeps are the services behind the toolbar.
type ToolbarDeps struct {
	Typography Typography
	Explainer  Explainer
	Clipboard  port.Clipboard
	// Sheet is the page the toolbar styles. Typography must apply to the
	// same sheet.
	Sheet port.StyleSheet
}

type toolbarMode int

const (
	modeToolbar toolbarMode = iota
	modeExplain
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusError
)

// SyncChangedMsg reports keys changed in the synced store by another
// process.
type SyncChangedMsg struct {
	Keys []string
}

// ThemeChangedMsg swaps the palette after a config reload.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

type explainDoneMsg struct {
	result entity.ExplainResult
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}

// ToolbarModel is the interactive reading toolbar: typography buttons for
// one origin, an explain prompt and a status line.
type ToolbarModel struct {
	ctx     context.Context
	deps    ToolbarDeps
	applier *usecase.ApplyTypographyUseCase
	theme   *styles.Theme
	keys    styles.ToolbarKeyMap
	help    help.Model
	spinner spinner.Model
	input   textarea.Model

	origin  string
	eff     entity.EffectiveSettings
	enabled bool
	mode    toolbarMode

	explaining  bool
	result      *entity.ExplainResult
	resultView  string
	status      string
	statusLevel statusLevel
	statusSeq   int

	width  int
	height int
}

// NewToolbarModel resolves siteOrigin and, when enabled, styles the page.
func NewToolbarModel(ctx context.Context, theme *styles.Theme, deps ToolbarDeps, siteOrigin string, enabled bool) *ToolbarModel {
	ta := textarea.New()
	ta.Placeholder = "Paste the passage to explain..."
	ta.ShowLineNumbers = false
	// Uncapped so validation sees and reports the full pasted length.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(6)

	m := &ToolbarModel{
		ctx:     logging.WithComponent(ctx, "toolbar"),
		deps:    deps,
		theme:   theme,
		keys:    styles.DefaultToolbarKeyMap(),
		help:    styles.NewStyledHelp(theme),
		spinner: styles.NewDefaultSpinner(theme),
		input:   ta,
		origin:  siteOrigin,
		enabled: enabled,
		width:   80,
	}
	if deps.Sheet != nil {
		m.applier = usecase.NewApplyTypographyUseCase(deps.Sheet)
	}
	m.eff = deps.Typography.Resolve(m.ctx, siteOrigin)
	m.apply()
	return m
}

// Init implements tea.Model.
func (m *ToolbarModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ToolbarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.SetWidth(max(msg.Width-6, minMarkdownWidth))
		m.renderResult()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeExplain {
			return m.updateExplain(msg)
		}
		return m.updateToolbar(msg)

	case explainDoneMsg:
		m.explaining = false
		m.result = &msg.result
		m.renderResult()
		if !msg.result.OK() {
			return m, m.setStatus(statusError, msg.result.Err.Error())
		}
		m.mode = modeToolbar
		m.input.Blur()
		return m, m.setStatus(statusSuccess, "Explanation ready")

	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus(statusError, msg.err.Error())
		}
		return m, m.setStatus(statusSuccess, "Copied to clipboard")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case SyncChangedMsg:
		return m, m.syncChanged(msg.Keys)

	case ThemeChangedMsg:
		m.setTheme(msg.Theme)
		return m, nil

	case spinner.TickMsg:
		if !m.explaining {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.mode == modeExplain {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ToolbarModel) updateToolbar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.FontUp):
		return m, m.adjust(entity.FieldFontScale, entity.Increase)
	case key.Matches(msg, m.keys.FontDown):
		return m, m.adjust(entity.FieldFontScale, entity.Decrease)
	case key.Matches(msg, m.keys.LineUp):
		return m, m.adjust(entity.FieldLineHeight, entity.Increase)
	case key.Matches(msg, m.keys.LineDown):
		return m, m.adjust(entity.FieldLineHeight, entity.Decrease)
	case key.Matches(msg, m.keys.Reset):
		return m, m.reset()
	case key.Matches(msg, m.keys.SaveGlobal):
		return m, m.saveGlobal()
	case key.Matches(msg, m.keys.Toggle):
		m.enabled = !m.enabled
		m.apply()
		if m.enabled {
			return m, m.setStatus(statusInfo, "Typography on for this page")
		}
		return m, m.setStatus(statusInfo, "Typography off for this page")
	case key.Matches(msg, m.keys.Explain):
		m.mode = modeExplain
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyResult()
	}
	return m, nil
}

func (m *ToolbarModel) updateExplain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeToolbar
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.explaining {
			return m, nil
		}
		m.explaining = true
		req := entity.ExplainRequest{Text: m.input.Value(), Source: entity.SourceInput}
		return m, tea.Batch(m.spinner.Tick, m.explain(req))
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ToolbarModel) adjust(field entity.TypographyField, dir entity.Direction) tea.Cmd {
	if !m.enabled {
		return m.setStatus(statusInfo, "Typography is off for this page (t to turn on)")
	}
	adj := m.deps.Typography.Adjust(m.ctx, m.eff, field, dir)
	m.eff = adj.Settings
	if !adj.Changed {
		return m.setStatus(statusInfo, fmt.Sprintf("%s already at %s", fieldLabel(field), valueLabel(m.eff.Settings, field)))
	}
	return nil
}

func (m *ToolbarModel) reset() tea.Cmd {
	m.eff = m.deps.Typography.ResetToDefaults(m.ctx, m.origin)
	m.apply()
	if m.origin == "" {
		return m.setStatus(statusSuccess, "Global settings reset to defaults")
	}
	return m.setStatus(statusSuccess, "Site reset to global settings")
}

func (m *ToolbarModel) saveGlobal() tea.Cmd {
	s := m.eff.Settings
	if err := m.deps.Typography.SaveAsGlobal(m.ctx, s); err != nil {
		return m.setStatus(statusError, err.Error())
	}
	m.eff = m.deps.Typography.Resolve(m.ctx, m.origin)
	return m.setStatus(statusSuccess, fmt.Sprintf("Saved %s · %s as global", s.FontScalePercent(), s.LineHeightLabel()))
}

// syncChanged re-resolves after the synced file changed under us.
func (m *ToolbarModel) syncChanged(keys []string) tea.Cmd {
	relevant := slices.ContainsFunc(keys, func(k string) bool {
		return k == usecase.KeyFontScale || k == usecase.KeyLineHeight
	})
	if !relevant {
		return nil
	}
	if m.origin != "" {
		m.deps.Typography.InvalidateCache(m.origin)
	}
	m.eff = m.deps.Typography.Resolve(m.ctx, m.origin)
	m.apply()
	return m.setStatus(statusInfo, "Global settings changed on another device")
}

// apply writes the effective stylesheet, or clears it when disabled.
func (m *ToolbarModel) apply() {
	if m.applier == nil {
		return
	}
	s := m.eff.Settings
	if !m.enabled {
		s = entity.DefaultTypography()
	}
	if _, _, err := m.applier.ApplyToPage(m.ctx, s); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to apply typography")
	}
}

func (m *ToolbarModel) explain(req entity.ExplainRequest) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return explainDoneMsg{result: m.deps.Explainer.ExplainText(ctx, req)}
	}
}

func (m *ToolbarModel) copyResult() tea.Cmd {
	if m.result == nil || !m.result.OK() {
		return m.setStatus(statusInfo, "Nothing to copy yet")
	}
	if m.deps.Clipboard == nil {
		return m.setStatus(statusError, "Clipboard unavailable")
	}
	ctx, text := m.ctx, m.result.Explanation
	return func() tea.Msg {
		return copiedMsg{err: m.deps.Clipboard.WriteText(ctx, text)}
	}
}

// setStatus shows text and schedules its removal. A newer status cancels
// the pending removal of an older one.
func (m *ToolbarModel) setStatus(level statusLevel, text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusLevel = level
	seq := m.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *ToolbarModel) setTheme(theme *styles.Theme) {
	if theme == nil {
		return
	}
	m.theme = theme
	m.help = styles.NewStyledHelp(theme)
	m.help.Width = m.width
	m.spinner = styles.NewDefaultSpinner(theme)
	m.renderResult()
}

func (m *ToolbarModel) renderResult() {
	if m.result == nil || !m.result.OK() {
		m.resultView = ""
		return
	}
	r := styles.NewExplainRenderer(m.theme, max(m.width-4, minMarkdownWidth), styles.MarkdownStyleDark)
	m.resultView = r.Markdown(m.result.Explanation)
}

// View implements tea.Model.
func (m *ToolbarModel) View() string {
	t := m.theme
	var sb strings.Builder

	title := t.Title.Render("includs")
	where := "global"
	if m.origin != "" {
		where = m.origin
	}
	sb.WriteString(fmt.Sprintf("\n  %s  %s %s", title, t.Highlight.Render(where), t.SourceBadge(m.eff.Source)))
	if !m.enabled {
		sb.WriteString(" " + t.MutedBadge("off"))
	}
	sb.WriteString("\n\n")

	sb.WriteString("  " + m.controls() + "\n")
	if m.eff.Source == entity.SourceSite {
		sb.WriteString("  " + t.Subtle.Render(fmt.Sprintf("global %s · %s",
			m.eff.Global.FontScalePercent(), m.eff.Global.LineHeightLabel())) + "\n")
	}

	sb.WriteString("\n  " + m.statusView() + "\n")

	if m.mode == modeExplain {
		sb.WriteString("\n  " + t.BoxHeader.Render(styles.IconRobot+" Explain") + "\n")
		sb.WriteString(indent(m.input.View(), "  ") + "\n")
		if m.explaining {
			sb.WriteString("  " + m.spinner.View() + " " + t.Subtle.Render("Asking OpenAI...") + "\n")
		} else {
			sb.WriteString("  " + t.Subtle.Render("ctrl+s send • esc back") + "\n")
		}
	}
	if m.resultView != "" {
		sb.WriteString("\n" + m.resultView)
	}

	if m.mode == modeToolbar {
		sb.WriteString("\n  " + m.help.View(m.keys) + "\n")
	}
	return sb.String()
}

func (m *ToolbarModel) controls() string {
	t := m.theme
	button := t.Button
	if !m.enabled {
		button = t.ButtonMuted
	}
	s := m.eff.Settings
	value := lipgloss.NewStyle().Width(6).Align(lipgloss.Center)

	font := lipgloss.JoinHorizontal(lipgloss.Center,
		button.Render("A-"), value.Render(s.FontScalePercent()), button.Render("A+"))
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		button.Render(styles.IconMinus), value.Render(s.LineHeightLabel()), button.Render(styles.IconPlus))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		t.Subtle.Render(styles.IconFont+" "), font, "   ",
		t.Subtle.Render(styles.IconLineHeight+" "), line)
}

func (m *ToolbarModel) statusView() string {
	if m.status == "" {
		return ""
	}
	switch m.statusLevel {
	case statusSuccess:
		return m.theme.SuccessStyle.Render(m.status)
	case statusError:
		return m.theme.ErrorStyle.Render(m.status)
	default:
		return m.theme.Subtle.Render(m.status)
	}
}

// Settings returns the effective settings currently shown.
func (m *ToolbarModel) Settings() entity.EffectiveSettings {
	return m.eff
}

// Status returns the visible status message.
func (m *ToolbarModel) Status() string {
	return m.status
}

// Enabled reports whether the page is styled.
func (m *ToolbarModel) Enabled() bool {
	return m.enabled
}

func fieldLabel(field entity.TypographyField) string {
	if field == entity.FieldFontScale {
		return "Font size"
	}
	return "Line height"
}

func valueLabel(s entity.TypographySettings, field entity.TypographyField) string {
	if field == entity.FieldFontScale {
		return s.FontScalePercent()
	}
	return s.LineHeightLabel()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

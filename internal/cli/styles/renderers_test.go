package styles_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestNewTheme_FallsBackToDefaultPalette(t *testing.T) {
	theme := styles.NewTheme(&config.Config{})
	assert.Equal(t, "#4ade80", string(theme.Accent))
}

func TestNewThemeFromPalette_ToolbarStyles(t *testing.T) {
	p := config.DefaultPalette()
	p.Accent = "#ff00ff"
	theme := styles.NewThemeFromPalette(p)

	assert.Equal(t, theme.Accent, theme.ButtonActive.GetBackground())
	assert.Equal(t, theme.Background, theme.ButtonActive.GetForeground())
	assert.True(t, theme.ButtonActive.GetBold())
	assert.Equal(t, theme.Surface, theme.ButtonMuted.GetBackground())
	assert.Equal(t, theme.Accent, theme.Badge.GetBackground())
	assert.Equal(t, theme.Border, theme.Box.GetBorderTopForeground())
	assert.Equal(t, theme.Accent, theme.Success)
	assert.Equal(t, theme.Error, theme.ErrorStyle.GetForeground())
}

func TestTypographyRenderer_RenderSettings(t *testing.T) {
	r := styles.NewTypographyRenderer(testTheme())
	global := entity.TypographySettings{FontScale: 1.1, LineHeight: 1.5}
	eff := entity.NewEffectiveSettings("https://example.com", global, &entity.SiteOverride{FontScale: entity.Float(1.3)})

	out := r.RenderSettings(eff)
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "130%")
	assert.Contains(t, out, "global 110%")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "site")

	out = r.RenderSettings(entity.FallbackSettings(""))
	assert.Contains(t, out, "global")
	assert.Contains(t, out, "defaults")
}

func TestTypographyRenderer_RenderAdjustment(t *testing.T) {
	r := styles.NewTypographyRenderer(testTheme())
	eff := entity.NewEffectiveSettings("", entity.TypographySettings{FontScale: 2.0, LineHeight: 1.5}, nil)

	out := r.RenderAdjustment(entity.Adjustment{Settings: eff, Field: entity.FieldFontScale, Value: 2.0})
	assert.Contains(t, out, "Font size already at 200%")

	out = r.RenderAdjustment(entity.Adjustment{Settings: eff, Field: entity.FieldLineHeight, Value: 1.5, Changed: true})
	assert.Contains(t, out, "Line height")
	assert.Contains(t, out, "1.5")
}

func TestTypographyRenderer_RenderSites(t *testing.T) {
	r := styles.NewTypographyRenderer(testTheme())
	assert.Contains(t, r.RenderSites(nil), "No site overrides stored")

	out := r.RenderSites([]usecase.SiteTypography{{
		Origin:    "https://a.test",
		FontScale: entity.Float(1.2),
		Effective: entity.TypographySettings{FontScale: 1.2, LineHeight: 1.5},
	}})
	assert.Contains(t, out, "https://a.test")
	assert.Contains(t, out, "120%")
	assert.Contains(t, out, "1 site")
}

func TestKeysRenderer_RenderStatusMasksKeys(t *testing.T) {
	r := styles.NewKeysRenderer(testTheme())
	out := r.RenderStatus([]entity.ProviderCredential{
		{Provider: entity.ProviderOpenAI, APIKey: "sk-abcdefghijklmnop", Endpoint: entity.DefaultOpenAIEndpoint, Model: "gpt-4o-mini", Validated: true},
		{Provider: entity.ProviderElevenLabs},
	})

	assert.NotContains(t, out, "sk-abcdefghijklmnop")
	assert.Contains(t, out, "sk-a***********mnop")
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "ElevenLabs")
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "none selected")
}

func TestKeysRenderer_RenderTestResult(t *testing.T) {
	r := styles.NewKeysRenderer(testTheme())

	ok := r.RenderTestResult(entity.KeyTestResult{Provider: entity.ProviderElevenLabs, Valid: true, Voices: []entity.Voice{{ID: "v1"}}})
	assert.Contains(t, ok, "ElevenLabs key is valid (1 voices)")

	failed := r.RenderTestResult(entity.KeyTestResult{
		Provider: entity.ProviderOpenAI,
		Err:      entity.NewGatewayError(entity.KindAuth, entity.ProviderOpenAI, 401, "Invalid OpenAI API key."),
	})
	assert.Contains(t, failed, "Invalid OpenAI API key.")
	assert.Contains(t, failed, "auth (HTTP 401)")
}

func TestKeysRenderer_RenderVoices(t *testing.T) {
	r := styles.NewKeysRenderer(testTheme())
	out := r.RenderVoices([]entity.Voice{{ID: "v1", Name: "Rachel"}, {ID: "v2", Name: "Adam"}}, "v2")
	assert.Contains(t, out, "Rachel")
	assert.Contains(t, out, "Adam")
	assert.Contains(t, out, "2 voices")

	assert.Contains(t, r.RenderVoices(nil, ""), "No voices cached")
}

func TestExplainRenderer(t *testing.T) {
	r := styles.NewExplainRenderer(testTheme(), 60, styles.MarkdownStylePlain)

	out := r.RenderExplanation(entity.ExplainResult{Explanation: "It means **hello**.", Source: entity.SourceSelection})
	assert.Contains(t, out, "Explanation")
	assert.Contains(t, out, "selection")
	assert.Contains(t, out, "hello")

	fail := r.RenderFailure(entity.NewGatewayError(entity.KindRateLimit, entity.ProviderOpenAI, 429, "Rate limit exceeded. Please try again later."))
	assert.Contains(t, fail, "Rate limit exceeded")
	assert.Contains(t, fail, "Wait a moment")
}

func TestPrefsRenderer(t *testing.T) {
	r := styles.NewPrefsRenderer(testTheme())
	out := r.RenderPreferences(entity.DefaultPreferences())
	for _, want := range []string{"enabledByDefault", "100%", "1.5", "normal", "right", "default", "v1"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfirmModel(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Reset settings?", "")
	assert.Contains(t, m.View(), "Reset settings?")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	cm := next.(styles.ConfirmModel)
	assert.True(t, cm.Done())
	assert.True(t, cm.Result())

	next, _ = styles.NewConfirm(testTheme(), "x", "").Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.(styles.ConfirmModel).Result())
}

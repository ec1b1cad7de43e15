package model

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/port/mocks"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/page"
	"github.com/bnema/includs/internal/infrastructure/storage"
)

const testOrigin = "https://example.com"

type stubExplainer struct {
	result entity.ExplainResult
	got    entity.ExplainRequest
}

func (s *stubExplainer) ExplainText(_ context.Context, req entity.ExplainRequest) entity.ExplainResult {
	s.got = req
	return s.result
}

type toolbarFixture struct {
	model     *ToolbarModel
	store     *storage.FileStore
	sheet     *page.MemoryStyleSheet
	explainer *stubExplainer
	clipboard *mocks.MockClipboard
}

func newToolbarFixture(t *testing.T, enabled bool) *toolbarFixture {
	t.Helper()

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	sheet := page.NewMemoryStyleSheet()
	explainer := &stubExplainer{}
	clip := mocks.NewMockClipboard(t)
	typo := usecase.NewManageTypographyUseCase(store, nil, usecase.NewApplyTypographyUseCase(sheet))

	m := NewToolbarModel(context.Background(), styles.NewTheme(nil), ToolbarDeps{
		Typography: typo,
		Explainer:  explainer,
		Clipboard:  clip,
		Sheet:      sheet,
	}, testOrigin, enabled)

	return &toolbarFixture{model: m, store: store, sheet: sheet, explainer: explainer, clipboard: clip}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *toolbarFixture) press(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = f.model.Update(msg)
	}
	return cmd
}

// runCmd executes cmd, expanding batches, and returns the messages produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

// submitExplain sends ctrl+s and feeds the explain result back to the model.
func (f *toolbarFixture) submitExplain(t *testing.T) {
	t.Helper()
	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, f.model.explaining)

	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(explainDoneMsg); ok {
			f.press(done)
			return
		}
	}
	t.Fatal("explain command produced no result")
}

func (f *toolbarFixture) css(t *testing.T) string {
	t.Helper()
	css, err := f.sheet.Text(context.Background())
	require.NoError(t, err)
	return css
}

func TestToolbar_FontUpStoresSiteOverride(t *testing.T) {
	f := newToolbarFixture(t, true)
	assert.Empty(t, f.css(t), "defaults leave the page untouched")

	f.press(runeKey("+"), runeKey("+"))

	eff := f.model.Settings()
	assert.InDelta(t, 1.2, eff.Settings.FontScale, 1e-9)
	assert.Equal(t, entity.SourceSite, eff.Source)
	assert.Contains(t, f.css(t), "font-size")
	assert.Contains(t, f.model.View(), "120%")

	stored, err := f.store.List(context.Background(), port.ScopeLocal, "site_")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestToolbar_AdjustAtBoundSetsStatus(t *testing.T) {
	f := newToolbarFixture(t, true)

	for range 20 {
		f.press(runeKey("-"))
	}

	assert.InDelta(t, entity.FontScaleBounds.Min, f.model.Settings().Settings.FontScale, 1e-9)
	assert.Equal(t, "Font size already at 80%", f.model.Status())
}

func TestToolbar_ToggleClearsStylesheet(t *testing.T) {
	f := newToolbarFixture(t, true)
	f.press(runeKey("]"))
	require.NotEmpty(t, f.css(t))

	f.press(runeKey("t"))
	assert.False(t, f.model.Enabled())
	assert.Empty(t, f.css(t))

	f.press(runeKey("]"))
	assert.InDelta(t, 1.6, f.model.Settings().Settings.LineHeight, 1e-9, "adjusting is blocked while off")
	assert.Contains(t, f.model.Status(), "off")

	f.press(runeKey("t"))
	assert.Contains(t, f.css(t), "line-height")
}

func TestToolbar_ResetAndSaveGlobal(t *testing.T) {
	f := newToolbarFixture(t, true)
	f.press(runeKey("+"), runeKey("g"))

	eff := f.model.Settings()
	assert.InDelta(t, 1.1, eff.Global.FontScale, 1e-9)
	assert.Contains(t, f.model.Status(), "as global")

	f.press(runeKey("r"))
	eff = f.model.Settings()
	assert.Equal(t, entity.SourceGlobal, eff.Source)
	assert.InDelta(t, 1.1, eff.Settings.FontScale, 1e-9, "site falls back to the saved global")
}

func TestToolbar_StatusClearsOnlyForLatestMessage(t *testing.T) {
	f := newToolbarFixture(t, true)

	f.press(runeKey("t"))
	first := f.model.statusSeq
	f.press(runeKey("t"))
	require.NotEmpty(t, f.model.Status())

	f.press(clearStatusMsg{seq: first})
	assert.NotEmpty(t, f.model.Status(), "stale timer must not clear a newer message")

	f.press(clearStatusMsg{seq: f.model.statusSeq})
	assert.Empty(t, f.model.Status())
}

func TestToolbar_ExplainAndCopy(t *testing.T) {
	f := newToolbarFixture(t, true)
	text := "Photosynthesis converts light energy into chemical energy."

	f.press(runeKey("e"))
	require.Equal(t, modeExplain, f.model.mode)

	f.press(runeKey("+"))
	assert.InDelta(t, 1.0, f.model.Settings().Settings.FontScale, 1e-9, "keys go to the prompt while explaining")

	f.explainer.result = entity.ExplainResult{Explanation: "Plants turn light into food.", Source: entity.SourceInput}
	f.model.input.SetValue(text)
	f.submitExplain(t)

	assert.Equal(t, text, f.explainer.got.Text)
	assert.Equal(t, entity.SourceInput, f.explainer.got.Source)
	assert.False(t, f.model.explaining)
	assert.Equal(t, modeToolbar, f.model.mode)
	require.NotNil(t, f.model.result)
	assert.Equal(t, "Plants turn light into food.", f.model.result.Explanation)
	assert.NotEmpty(t, f.model.resultView)

	f.clipboard.EXPECT().WriteText(mock.Anything, "Plants turn light into food.").Return(nil).Once()
	copyCmd := f.press(runeKey("c"))
	require.NotNil(t, copyCmd)
	f.press(copyCmd())
	assert.Equal(t, "Copied to clipboard", f.model.Status())
}

func TestToolbar_ExplainFailureKeepsPrompt(t *testing.T) {
	f := newToolbarFixture(t, true)
	f.press(runeKey("e"))

	gerr := entity.NewGatewayError(entity.KindAuth, entity.ProviderOpenAI, 401, "Invalid API key")
	f.press(explainDoneMsg{result: entity.ExplainResult{Err: gerr}})

	assert.Equal(t, modeExplain, f.model.mode)
	assert.Equal(t, "Invalid API key", f.model.Status())

	f.press(tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, modeToolbar, f.model.mode)
	f.press(runeKey("c"))
	assert.Equal(t, "Nothing to copy yet", f.model.Status())
}

func TestToolbar_ExplainPassesLongPasteWhole(t *testing.T) {
	f := newToolbarFixture(t, true)
	long := strings.Repeat("word ", 1300)
	f.explainer.result = entity.ExplainResult{
		Err: entity.NewGatewayError(entity.KindValidation, "", 0, "Text is too long (6499 chars). Maximum is 5000 characters."),
	}

	f.press(runeKey("e"))
	f.model.input.SetValue(long)
	f.submitExplain(t)

	assert.Equal(t, long, f.explainer.got.Text, "the prompt must not truncate pasted text")
	assert.Equal(t, modeExplain, f.model.mode)
	assert.Contains(t, f.model.Status(), "6499 chars")
}

func TestToolbar_SyncChangeReresolves(t *testing.T) {
	f := newToolbarFixture(t, true)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, port.ScopeSynced, map[string]any{usecase.KeyLineHeight: 2.0}))

	f.press(SyncChangedMsg{Keys: []string{usecase.KeyTTSSpeed}})
	assert.InDelta(t, 1.5, f.model.Settings().Settings.LineHeight, 1e-9, "unrelated keys are ignored")

	f.press(SyncChangedMsg{Keys: []string{usecase.KeyLineHeight}})
	assert.InDelta(t, 2.0, f.model.Settings().Settings.LineHeight, 1e-9)
	assert.Contains(t, f.css(t), "line-height")
}

func TestToolbar_DisabledStartLeavesPage(t *testing.T) {
	f := newToolbarFixture(t, false)
	require.NoError(t, f.store.Set(context.Background(), port.ScopeSynced, map[string]any{usecase.KeyFontScale: 1.5}))
	f.press(SyncChangedMsg{Keys: []string{usecase.KeyFontScale}})

	assert.Empty(t, f.css(t))
	assert.Contains(t, f.model.View(), "off")
}

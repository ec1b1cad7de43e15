package usecase_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	portmocks "github.com/bnema/includs/internal/application/port/mocks"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManagePreferences_EnsureInstalled_FirstRun(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})

	first, err := uc.EnsureInstalled(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	prefs, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)

	first, err = uc.EnsureInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestManagePreferences_EnsureInstalled_UpgradeFillsMissing(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeSynced, "_version", "0")
	store.put(port.ScopeSynced, "fontScale", "1.3")

	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})
	first, err := uc.EnsureInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)

	prefs, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.3, prefs.FontScale)
	assert.Equal(t, entity.TTSNormal, prefs.TTSSpeed)
	assert.Equal(t, entity.PreferencesVersion, prefs.Version)
}

func TestManagePreferences_EnsureInstalled_NoVersionKeepsStoredValues(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeSynced, "fontScale", "1.4")
	store.put(port.ScopeSynced, "toolbarPosition", `"left"`)

	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})
	first, err := uc.EnsureInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)

	prefs, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.4, prefs.FontScale)
	assert.Equal(t, entity.ToolbarLeft, prefs.ToolbarPosition)
	assert.Equal(t, entity.DefaultPreferences().LineHeight, prefs.LineHeight)
	assert.Equal(t, entity.PreferencesVersion, prefs.Version)
}

func TestManagePreferences_EnsureInstalled_UnreadableVersionKeepsStoredValues(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeSynced, "_version", `"two"`)
	store.put(port.ScopeSynced, "lineHeight", "2.1")

	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})
	first, err := uc.EnsureInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)

	raw, _ := store.raw(port.ScopeSynced, "lineHeight")
	assert.Equal(t, "2.1", raw)
	raw, _ = store.raw(port.ScopeSynced, "_version")
	assert.Equal(t, strconv.Itoa(entity.PreferencesVersion), raw)
}

func TestManagePreferences_EnsureInstalled_ReadError(t *testing.T) {
	store := portmocks.NewMockConfigStore(t)
	store.EXPECT().Get(mock.Anything, port.ScopeSynced).Return(nil, errors.New("no such file"))

	_, err := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{}).EnsureInstalled(testContext())
	assert.Error(t, err)
}

func TestManagePreferences_SetValue(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})

	prefs, err := uc.SetValue(ctx, "toolbarPosition", "left")
	require.NoError(t, err)
	assert.Equal(t, entity.ToolbarLeft, prefs.ToolbarPosition)

	_, err = uc.SetValue(ctx, "ttsSpeed", "warp")
	assert.ErrorIs(t, err, usecase.ErrInvalidPreferences)

	_, err = uc.SetValue(ctx, "lineHeight", "tall")
	assert.ErrorIs(t, err, usecase.ErrInvalidPreferences)

	_, err = uc.SetValue(ctx, "colour", "red")
	assert.ErrorIs(t, err, usecase.ErrInvalidPreferences)

	prefs, err = uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ToolbarLeft, prefs.ToolbarPosition)
	assert.Equal(t, entity.TTSNormal, prefs.TTSSpeed)
}

func TestManagePreferences_ResetAll_KeepsAPIKeys(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeSynced, "fontScale", "1.8")
	store.put(port.ScopeSynced, "openaiPrompt", `"custom"`)
	store.put(port.ScopeLocal, "openaiApiKey", `"sk-keep"`)
	store.put(port.ScopeLocal, "openaiKeyValid", "true")
	store.put(port.ScopeLocal, "elevenLabsApiKey", `"el-keep"`)
	store.put(port.ScopeLocal, "elevenLabsVoices", `[{"voice_id":"v1","name":"Rachel"}]`)
	store.put(port.ScopeLocal, "site_https://a.test", `{"fontScale":1.2}`)

	uc := usecase.NewManagePreferencesUseCase(store, usecase.ProviderDefaults{})
	require.NoError(t, uc.ResetAll(ctx))

	prefs, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)

	for key, want := range map[string]string{
		"openaiApiKey":        `"sk-keep"`,
		"elevenLabsApiKey":    `"el-keep"`,
		"openaiKeyValid":      "false",
		"elevenLabsVoices":    "[]",
		"openaiModel":         `"gpt-4o-mini"`,
		"site_https://a.test": `{"fontScale":1.2}`,
	} {
		raw, ok := store.raw(port.ScopeLocal, key)
		require.True(t, ok, key)
		assert.JSONEq(t, want, raw, key)
	}
}

package secrets_test

import (
	"testing"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/infrastructure/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	store := secrets.NewKeyringStore("")

	_, err := store.Get("openaiApiKey")
	assert.ErrorIs(t, err, port.ErrSecretNotFound)

	require.NoError(t, store.Set("openaiApiKey", "sk-test"))
	got, err := store.Get("openaiApiKey")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", got)

	require.NoError(t, store.Delete("openaiApiKey"))
	assert.ErrorIs(t, store.Delete("openaiApiKey"), port.ErrSecretNotFound)
}

func TestKeyringStore_ServicesAreSeparate(t *testing.T) {
	keyring.MockInit()
	a := secrets.NewKeyringStore("includs-a")
	b := secrets.NewKeyringStore("includs-b")

	require.NoError(t, a.Set("elevenLabsApiKey", "xi-1"))
	_, err := b.Get("elevenLabsApiKey")
	assert.ErrorIs(t, err, port.ErrSecretNotFound)
}

func TestKeyringStore_SurfacesBackendErrors(t *testing.T) {
	keyring.MockInitWithError(assert.AnError)
	store := secrets.NewKeyringStore("")

	_, err := store.Get("openaiApiKey")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrSecretNotFound)
	assert.ErrorIs(t, err, assert.AnError)
}

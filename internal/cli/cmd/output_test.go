package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/includs/internal/domain/entity"
)

func TestWriteStructured(t *testing.T) {
	v := explainOutputDoc{Explanation: "Plants make food from light.", Source: "selection"}

	t.Run("text defers to renderer", func(t *testing.T) {
		var buf bytes.Buffer
		done, err := writeStructured(&buf, outputText, v)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Empty(t, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		done, err := writeStructured(&buf, outputJSON, v)
		require.NoError(t, err)
		assert.True(t, done)

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "selection", got["source"])
		assert.NotContains(t, got, "error")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		done, err := writeStructured(&buf, outputYAML, v)
		require.NoError(t, err)
		assert.True(t, done)
		assert.Contains(t, buf.String(), "explanation: Plants make food from light.")
	})

	t.Run("unknown format", func(t *testing.T) {
		done, err := writeStructured(&bytes.Buffer{}, "xml", v)
		assert.True(t, done)
		assert.ErrorContains(t, err, "unsupported output format")
	})
}

func TestNewErrorOutput(t *testing.T) {
	assert.Nil(t, newErrorOutput(nil))

	out := newErrorOutput(entity.NewGatewayError(entity.KindRateLimit, entity.ProviderOpenAI, 429, "Rate limit exceeded. Please try again later."))
	require.NotNil(t, out)
	assert.Equal(t, "rate_limit", out.Kind)
	assert.Equal(t, "openai", out.Provider)
	assert.Equal(t, 429, out.StatusCode)
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://example.com", pageURL(" example.com "))
	assert.Equal(t, "http://localhost:8080/a", pageURL("http://localhost:8080/a"))
}

func TestSilentError_Unwraps(t *testing.T) {
	base := errors.New("invalid key")
	var err error = &silentError{err: base}

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "invalid key", err.Error())
	assert.Equal(t, "command failed", (&silentError{}).Error())
}

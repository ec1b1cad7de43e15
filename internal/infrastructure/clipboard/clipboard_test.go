package clipboard_test

import (
	"context"
	"testing"

	"github.com/bnema/includs/internal/infrastructure/clipboard"
	"github.com/bnema/includs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestAdapter_WriteThenRead(t *testing.T) {
	var buf string
	a := clipboard.NewWithFuncs(
		func(s string) error { buf = s; return nil },
		func() (string, error) { return buf, nil },
	)

	require.NoError(t, a.WriteText(testCtx(), "a simpler sentence"))
	got, err := a.ReadText(testCtx())
	require.NoError(t, err)
	assert.Equal(t, "a simpler sentence", got)
}

func TestAdapter_WrapsBackendErrors(t *testing.T) {
	a := clipboard.NewWithFuncs(
		func(string) error { return assert.AnError },
		func() (string, error) { return "", assert.AnError },
	)

	assert.ErrorIs(t, a.WriteText(testCtx(), "x"), assert.AnError)
	_, err := a.ReadText(testCtx())
	assert.ErrorIs(t, err, assert.AnError)
}
